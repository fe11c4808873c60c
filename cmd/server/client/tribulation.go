package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/cultivation-api/internal/handlers/cultivation/v1alpha1"
)

var (
	challengeID string
	passed      bool
)

var tribulationCmd = &cobra.Command{
	Use:   "tribulation",
	Short: "Show the pending tribulation",
	RunE:  runTribulation,
}

var resolveTribulationCmd = &cobra.Command{
	Use:   "resolve-tribulation",
	Short: "Report the outcome of a tribulation",
	Long:  `Close the pending tribulation. A pass retries the breakthrough immediately.`,
	RunE:  runResolveTribulation,
}

func init() {
	resolveTribulationCmd.Flags().StringVar(&challengeID, "challenge-id", "", "Challenge ID (optional)")
	resolveTribulationCmd.Flags().BoolVar(&passed, "passed", false, "Whether the tribulation was survived")
}

func runTribulation(_ *cobra.Command, _ []string) error {
	if err := requirePlayerID(); err != nil {
		return err
	}

	resp, err := call(v1alpha1.MethodGetTribulation, map[string]any{"player_id": playerID})
	if err != nil || resp == nil {
		return err
	}

	if !flag(resp, "pending") {
		fmt.Printf("No tribulation pending\n")
		return nil
	}

	c := sub(resp, "challenge")
	fmt.Printf("Tribulation %s\n", str(c, "id"))
	fmt.Printf("Target: %s\n", str(c, "target_realm"))
	fmt.Printf("Kind: %s (%s)\n", str(c, "kind"), str(c, "difficulty"))
	fmt.Printf("Waves: %d x %d damage\n", num(c, "waves"), num(c, "damage_per_wave"))
	return nil
}

func runResolveTribulation(_ *cobra.Command, _ []string) error {
	if err := requirePlayerID(); err != nil {
		return err
	}

	resp, err := call(v1alpha1.MethodResolveTribulation, map[string]any{
		"player_id":    playerID,
		"challenge_id": challengeID,
		"passed":       passed,
	})
	if err != nil || resp == nil {
		return err
	}

	fmt.Printf("Tribulation %s\n", str(sub(resp, "challenge"), "status"))
	if bt := sub(resp, "breakthrough"); bt != nil {
		fmt.Printf("Breakthrough: %s\n", str(bt, "state"))
		fmt.Printf("%s\n", str(bt, "message"))
	}
	return nil
}
