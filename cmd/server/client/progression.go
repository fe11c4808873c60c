package client

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/cultivation-api/internal/handlers/cultivation/v1alpha1"
)

var cultivateCmd = &cobra.Command{
	Use:   "cultivate",
	Short: "Run one cultivation session",
	RunE:  runCultivate,
}

var cultivationInfoCmd = &cobra.Command{
	Use:   "cultivation-info",
	Short: "Show cooldown and the next cultivation gain",
	RunE:  runCultivationInfo,
}

var breakthroughCmd = &cobra.Command{
	Use:   "breakthrough",
	Short: "Attempt a breakthrough",
	RunE:  runBreakthrough,
}

var breakthroughInfoCmd = &cobra.Command{
	Use:   "breakthrough-info",
	Short: "Preview the next breakthrough",
	RunE:  runBreakthroughInfo,
}

func runCultivate(_ *cobra.Command, _ []string) error {
	if err := requirePlayerID(); err != nil {
		return err
	}

	resp, err := call(v1alpha1.MethodCultivate, map[string]any{"player_id": playerID})
	if err != nil || resp == nil {
		return err
	}

	p := sub(resp, "player")
	fmt.Printf("Gained %d cultivation (now %d)\n", num(resp, "gain"), num(p, "cultivation"))
	if next := str(resp, "next_realm"); next != "" {
		fmt.Printf("Next: %s requires %d\n", next, num(resp, "required"))
	}
	if flag(resp, "can_breakthrough") {
		fmt.Printf("Ready to break through\n")
	}
	return nil
}

func runCultivationInfo(_ *cobra.Command, _ []string) error {
	if err := requirePlayerID(); err != nil {
		return err
	}

	resp, err := call(v1alpha1.MethodGetCultivationInfo, map[string]any{"player_id": playerID})
	if err != nil || resp == nil {
		return err
	}

	fmt.Printf("Can cultivate: %v\n", flag(resp, "can_cultivate"))
	if remaining := num(resp, "cooldown_remaining_seconds"); remaining > 0 {
		fmt.Printf("Cooldown: %ds\n", remaining)
	}
	fmt.Printf("Next gain: %d\n", num(resp, "next_gain"))
	return nil
}

func runBreakthrough(_ *cobra.Command, _ []string) error {
	if err := requirePlayerID(); err != nil {
		return err
	}

	resp, err := call(v1alpha1.MethodAttemptBreakthrough, map[string]any{"player_id": playerID})
	if err != nil || resp == nil {
		return err
	}

	fmt.Printf("Result: %s\n", str(resp, "state"))
	fmt.Printf("%s\n", str(resp, "message"))
	fmt.Printf("%s -> %s at %.1f%%\n",
		str(sub(resp, "from"), "label"), str(sub(resp, "to"), "label"), ratio(resp, "rate")*100)

	if trib := sub(resp, "tribulation"); trib != nil {
		c := sub(trib, "challenge")
		fmt.Printf("Tribulation %s: %s, %d waves of %d damage\n",
			str(c, "id"), str(c, "kind"), num(c, "waves"), num(c, "damage_per_wave"))
	}
	if gain := sub(resp, "attribute_gain"); flag(resp, "success") && gain != nil {
		fmt.Printf("Gain: HP +%d  MP +%d  ATK +%d  DEF +%d\n",
			num(gain, "max_hp"), num(gain, "max_mp"), num(gain, "attack"), num(gain, "defense"))
	}
	return nil
}

func runBreakthroughInfo(_ *cobra.Command, _ []string) error {
	if err := requirePlayerID(); err != nil {
		return err
	}

	resp, err := call(v1alpha1.MethodGetBreakthroughInfo, map[string]any{"player_id": playerID})
	if err != nil || resp == nil {
		return err
	}

	fmt.Printf("Current: %s\n", str(sub(resp, "current"), "label"))
	if flag(resp, "at_max_realm") {
		fmt.Printf("At the peak of the ladder\n")
		return nil
	}
	fmt.Printf("Next: %s\n", str(sub(resp, "next"), "label"))
	fmt.Printf("Cultivation: %d / %d\n", num(resp, "cultivation"), num(resp, "required"))
	fmt.Printf("Rate: %.1f%%\n", ratio(resp, "rate")*100)

	breakdown := sub(sub(resp, "factors"), "breakdown")
	keys := make([]string, 0, len(breakdown))
	for k := range breakdown {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  - %s: %v\n", k, breakdown[k])
	}

	if flag(resp, "tribulation_required") {
		fmt.Printf("A tribulation guards this realm\n")
	}
	return nil
}
