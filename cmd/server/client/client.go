// Package client provides commands that drive a running casino server over gRPC
package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/clients/api/v1alpha1"

	casinov1alpha1 "github.com/KirkDiggler/rpg-casino/internal/api/casino/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	jsonOutput bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the casino server",
	Long:  `Client commands play a dice boss encounter and inspect its roll history through real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print responses as JSON")

	// Dice boss commands
	ClientCmd.AddCommand(startCmd)
	ClientCmd.AddCommand(getEncounterCmd)
	ClientCmd.AddCommand(toggleCmd)
	ClientCmd.AddCommand(rollMoreCmd)
	ClientCmd.AddCommand(passCmd)
	ClientCmd.AddCommand(bossTurnCmd)
	ClientCmd.AddCommand(beatenCmd)

	// Roll history commands
	ClientCmd.AddCommand(rollDiceCmd)
	ClientCmd.AddCommand(getRollSessionCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createDiceClient creates a dice service client
func createDiceClient() (apiv1alpha1.DiceServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return apiv1alpha1.NewDiceServiceClient(conn), cleanup, nil
}

// createCasinoClient creates a dice boss service client
func createCasinoClient() (casinov1alpha1.DiceBossServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return casinov1alpha1.NewDiceBossServiceClient(conn), cleanup, nil
}

func printJSON(m proto.Message) error {
	marshaler := protojson.MarshalOptions{
		Multiline:       true,
		Indent:          "  ",
		EmitUnpopulated: true,
	}
	data, err := marshaler.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal response to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// FormatPool renders the dice pool as one line, e.g. "[1*] [5] (2)".
// Held dice are starred, banked dice are in parentheses.
func FormatPool(pool *casinov1alpha1.DicePool) string {
	if pool == nil {
		return ""
	}
	parts := make([]string, 0, len(pool.Dice))
	for _, d := range pool.Dice {
		switch {
		case d.Banked:
			parts = append(parts, fmt.Sprintf("(%d)", d.Value))
		case d.Held:
			parts = append(parts, fmt.Sprintf("[%d*]", d.Value))
		default:
			parts = append(parts, fmt.Sprintf("[%d]", d.Value))
		}
	}
	return strings.Join(parts, " ")
}

// PrintEncounter prints the combatants and the dice pool
func PrintEncounter(enc *casinov1alpha1.Encounter) {
	if enc == nil {
		return
	}
	player, boss, pool := enc.GetPlayer(), enc.GetBoss(), enc.GetPool()
	fmt.Printf("\nEncounter %s (turn %d, %s)\n", enc.GetId(), enc.GetTurn(), enc.GetStatus())
	fmt.Printf("  %s: HP %d/%d  shield %d/%d\n",
		player.GetName(), player.GetHp(), player.GetMaxHp(), player.GetShield(), player.GetMaxShield())
	fmt.Printf("  %s: HP %d/%d\n", boss.GetName(), boss.GetHp(), boss.GetMaxHp())
	fmt.Printf("  Dice: %s\n", FormatPool(pool))
	fmt.Printf("  Pot: %d  selection: %d  phase: %s\n", pool.GetPot(), pool.GetSelectionScore(), pool.GetPhase())
}

// PrintTurn prints how a finished turn went
func PrintTurn(who string, turn *casinov1alpha1.TurnSummary) {
	if turn == nil {
		return
	}
	if turn.Busted {
		fmt.Printf("%s busted on %v\n", who, turn.Values)
		return
	}
	fmt.Printf("%s scored %d for %d damage\n", who, turn.Score, turn.Damage)
}

// PrintRejection prints a refused action, if any
func PrintRejection(r *casinov1alpha1.Rejection) {
	if r != nil {
		fmt.Printf("Rejected (%s): %s\n", r.Reason, r.Message)
	}
}
