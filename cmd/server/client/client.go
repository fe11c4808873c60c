// Package client provides test commands for the cultivation gRPC service
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/cultivation-api/internal/errors"
	"github.com/KirkDiggler/cultivation-api/internal/handlers/cultivation/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	rawJSON    bool

	// Shared request flags
	playerID string
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the cultivation API",
	Long:  `Client commands allow you to exercise the cultivation API by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&rawJSON, "json", false, "Print the raw response as JSON")
	ClientCmd.PersistentFlags().StringVar(&playerID, "player-id", "", "Player ID")

	// Player commands
	ClientCmd.AddCommand(createPlayerCmd)
	ClientCmd.AddCommand(getPlayerCmd)

	// Progression commands
	ClientCmd.AddCommand(cultivateCmd)
	ClientCmd.AddCommand(cultivationInfoCmd)
	ClientCmd.AddCommand(breakthroughCmd)
	ClientCmd.AddCommand(breakthroughInfoCmd)

	// Tribulation commands
	ClientCmd.AddCommand(tribulationCmd)
	ClientCmd.AddCommand(resolveTribulationCmd)
}

// createClient dials the server and returns a client plus its cleanup
func createClient() (*v1alpha1.Client, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

// call performs one request with the configured timeout
func call(method string, fields map[string]any) (map[string]any, error) {
	client, cleanup, err := createClient()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Call(ctx, method, fields)
	if err != nil {
		return nil, describeError(method, err)
	}

	if rawJSON {
		printJSON(resp)
		return nil, nil
	}
	return resp.AsMap(), nil
}

// describeError turns a status error into something a player can act on
func describeError(method string, err error) error {
	cerr := errors.FromGRPCError(err)
	if remaining, ok := errors.RemainingCooldown(cerr); ok {
		return fmt.Errorf("%s: still on cooldown, try again in %s", method, remaining)
	}
	if errors.GetCode(cerr).Retryable() {
		return fmt.Errorf("%s failed, safe to retry: %w", method, cerr)
	}
	return fmt.Errorf("%s failed: %w", method, cerr)
}

func requirePlayerID() error {
	if playerID == "" {
		return fmt.Errorf("--player-id is required")
	}
	return nil
}

func printJSON(resp *structpb.Struct) {
	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func sub(m map[string]any, key string) map[string]any {
	v, _ := m[key].(map[string]any)
	return v
}

func num(m map[string]any, key string) int64 {
	v, _ := m[key].(float64)
	return int64(v)
}

func str(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}

func flag(m map[string]any, key string) bool {
	v, _ := m[key].(bool)
	return v
}

func printPlayer(p map[string]any) {
	if p == nil {
		return
	}
	root := sub(p, "spirit_root")
	attrs := sub(p, "attributes")
	stats := sub(p, "stats")

	fmt.Printf("Player: %s (%s)\n", str(p, "name"), str(p, "id"))
	fmt.Printf("Realm: %s\n", str(p, "realm_label"))
	fmt.Printf("Cultivation: %d\n", num(p, "cultivation"))
	fmt.Printf("Spirit Root: %s %s, value %d, purity %d%%\n",
		str(root, "quality"), str(root, "label"), num(root, "value"), num(root, "purity"))
	fmt.Printf("Attributes: CON %d  SPI %d  COM %d  LUK %d  BONE %d\n",
		num(attrs, "constitution"), num(attrs, "spiritual_power"), num(attrs, "comprehension"),
		num(attrs, "luck"), num(attrs, "root_bone"))
	fmt.Printf("Stats: HP %d/%d  MP %d/%d  ATK %d  DEF %d\n",
		num(stats, "hp"), num(stats, "max_hp"), num(stats, "mp"), num(stats, "max_mp"),
		num(stats, "attack"), num(stats, "defense"))
	fmt.Printf("Spirit Stones: %d\n", num(p, "spirit_stones"))
}

func ratio(m map[string]any, key string) float64 {
	v, _ := m[key].(float64)
	return v
}
