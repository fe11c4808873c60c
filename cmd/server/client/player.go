package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/cultivation-api/internal/handlers/cultivation/v1alpha1"
)

var playerName string

var createPlayerCmd = &cobra.Command{
	Use:   "create-player",
	Short: "Create a new cultivator",
	Long:  `Roll a spirit root and attributes for a new player at the first realm.`,
	RunE:  runCreatePlayer,
}

var getPlayerCmd = &cobra.Command{
	Use:   "get-player",
	Short: "Show a player",
	RunE:  runGetPlayer,
}

func init() {
	createPlayerCmd.Flags().StringVar(&playerName, "name", "", "Player name (required)")
	_ = createPlayerCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init
}

func runCreatePlayer(_ *cobra.Command, _ []string) error {
	resp, err := call(v1alpha1.MethodCreatePlayer, map[string]any{
		"player_id": playerID,
		"name":      playerName,
	})
	if err != nil || resp == nil {
		return err
	}

	fmt.Printf("New cultivator created\n\n")
	printPlayer(sub(resp, "player"))
	fmt.Printf("\n%s\n", str(resp, "spirit_root_description"))
	return nil
}

func runGetPlayer(_ *cobra.Command, _ []string) error {
	if err := requirePlayerID(); err != nil {
		return err
	}

	resp, err := call(v1alpha1.MethodGetPlayer, map[string]any{"player_id": playerID})
	if err != nil || resp == nil {
		return err
	}

	printPlayer(sub(resp, "player"))
	fmt.Printf("Power: %d\n", num(resp, "power"))
	fmt.Printf("\n%s\n", str(resp, "description"))
	return nil
}
