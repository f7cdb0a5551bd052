package client

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	casinov1alpha1 "github.com/KirkDiggler/rpg-casino/internal/api/casino/v1alpha1"
	"github.com/KirkDiggler/rpg-casino/internal/errors"
)

var startCmd = &cobra.Command{
	Use:   "start [player-id] [name]",
	Short: "Start a dice boss encounter",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  startEncounter,
}

var getEncounterCmd = &cobra.Command{
	Use:   "encounter [encounter-id]",
	Short: "Show an encounter",
	Args:  cobra.ExactArgs(1),
	RunE:  getEncounter,
}

var toggleCmd = &cobra.Command{
	Use:   "toggle [encounter-id] [die-id...]",
	Short: "Hold or release dice (ids 0-5)",
	Args:  cobra.MinimumNArgs(2),
	RunE:  toggleDice,
}

var rollMoreCmd = &cobra.Command{
	Use:   "roll-more [encounter-id]",
	Short: "Bank the held dice and roll the rest",
	Args:  cobra.ExactArgs(1),
	RunE:  rollMore,
}

var passCmd = &cobra.Command{
	Use:   "pass [encounter-id]",
	Short: "Bank the held dice and hit the boss with the pot",
	Args:  cobra.ExactArgs(1),
	RunE:  pass,
}

var bossTurnCmd = &cobra.Command{
	Use:   "boss-turn [encounter-id]",
	Short: "Let the boss roll",
	Args:  cobra.ExactArgs(1),
	RunE:  bossTurn,
}

var beatenCmd = &cobra.Command{
	Use:   "beaten [player-id]",
	Short: "List the bosses a player has defeated",
	Args:  cobra.ExactArgs(1),
	RunE:  listBeaten,
}

func startEncounter(_ *cobra.Command, args []string) error {
	req := &casinov1alpha1.StartEncounterRequest{PlayerId: args[0]}
	if len(args) > 1 {
		req.PlayerName = args[1]
	}

	return withCasinoClient(func(ctx context.Context, client casinov1alpha1.DiceBossServiceClient) error {
		resp, err := client.StartEncounter(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to start encounter: %w", err)
		}
		if jsonOutput {
			return printJSON(resp)
		}

		PrintEncounter(resp.Encounter)
		PrintTurn("You", resp.Encounter.LastPlayerTurn)
		return nil
	})
}

func getEncounter(_ *cobra.Command, args []string) error {
	return withCasinoClient(func(ctx context.Context, client casinov1alpha1.DiceBossServiceClient) error {
		resp, err := client.GetEncounter(ctx, &casinov1alpha1.GetEncounterRequest{EncounterId: args[0]})
		if err != nil {
			return fmt.Errorf("failed to get encounter: %w", err)
		}
		if jsonOutput {
			return printJSON(resp)
		}

		PrintEncounter(resp.Encounter)
		return nil
	})
}

func toggleDice(_ *cobra.Command, args []string) error {
	encounterID := args[0]
	dieIDs := make([]int32, 0, len(args)-1)
	for _, arg := range args[1:] {
		id, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid die id %q: %w", arg, err)
		}
		dieIDs = append(dieIDs, int32(id))
	}

	return withCasinoClient(func(ctx context.Context, client casinov1alpha1.DiceBossServiceClient) error {
		var last *casinov1alpha1.ToggleDieResponse
		for _, id := range dieIDs {
			resp, err := client.ToggleDie(ctx, &casinov1alpha1.ToggleDieRequest{
				EncounterId: encounterID,
				DieId:       id,
			})
			if err != nil {
				return fmt.Errorf("failed to toggle die %d: %w", id, err)
			}
			if !resp.Changed {
				fmt.Printf("Die %d cannot be toggled\n", id)
			}
			last = resp
		}
		if jsonOutput {
			return printJSON(last)
		}

		PrintEncounter(last.Encounter)
		return nil
	})
}

func rollMore(_ *cobra.Command, args []string) error {
	return withCasinoClient(func(ctx context.Context, client casinov1alpha1.DiceBossServiceClient) error {
		resp, err := client.RollMore(ctx, &casinov1alpha1.RollMoreRequest{EncounterId: args[0]})
		if err != nil {
			return fmt.Errorf("failed to roll: %w", err)
		}
		if jsonOutput {
			return printJSON(resp)
		}

		PrintRejection(resp.Rejection)
		if resp.Outcome != nil && resp.Outcome.HotHand {
			fmt.Println("Hot hand! All six dice are back in play.")
		}
		PrintTurn("You", resp.Turn)
		PrintEncounter(resp.Encounter)
		return nil
	})
}

func pass(_ *cobra.Command, args []string) error {
	return withCasinoClient(func(ctx context.Context, client casinov1alpha1.DiceBossServiceClient) error {
		resp, err := client.Pass(ctx, &casinov1alpha1.PassRequest{EncounterId: args[0]})
		if err != nil {
			return fmt.Errorf("failed to pass: %w", err)
		}
		if jsonOutput {
			return printJSON(resp)
		}

		PrintRejection(resp.Rejection)
		PrintTurn("You", resp.Turn)
		PrintEncounter(resp.Encounter)
		return nil
	})
}

func bossTurn(_ *cobra.Command, args []string) error {
	return withCasinoClient(func(ctx context.Context, client casinov1alpha1.DiceBossServiceClient) error {
		resp, err := client.BossTurn(ctx, &casinov1alpha1.BossTurnRequest{EncounterId: args[0]})
		if err != nil {
			return fmt.Errorf("failed to run boss turn: %w", err)
		}
		if jsonOutput {
			return printJSON(resp)
		}

		PrintRejection(resp.Rejection)
		PrintTurn("The boss", resp.Turn)
		PrintEncounter(resp.Encounter)
		return nil
	})
}

func listBeaten(_ *cobra.Command, args []string) error {
	return withCasinoClient(func(ctx context.Context, client casinov1alpha1.DiceBossServiceClient) error {
		resp, err := client.ListBeatenBosses(ctx, &casinov1alpha1.ListBeatenBossesRequest{PlayerId: args[0]})
		if err != nil {
			return fmt.Errorf("failed to list beaten bosses: %w", err)
		}
		if jsonOutput {
			return printJSON(resp)
		}

		if len(resp.GetBossIds()) == 0 {
			fmt.Println("No bosses beaten yet")
			return nil
		}
		for _, id := range resp.GetBossIds() {
			fmt.Println(id)
		}
		return nil
	})
}

func withCasinoClient(fn func(context.Context, casinov1alpha1.DiceBossServiceClient) error) error {
	client, cleanup, err := createCasinoClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return describeError(fn(ctx, client))
}

// describeError turns a gRPC status back into a structured error so the
// server's metadata (encounter id, reason) shows up in the CLI output
func describeError(err error) error {
	if err == nil {
		return nil
	}
	converted := errors.FromGRPCError(err)
	meta := errors.GetMeta(converted)
	if len(meta) == 0 {
		return converted
	}
	keys := lo.Keys(meta)
	slices.Sort(keys)
	parts := lo.Map(keys, func(k string, _ int) string { return fmt.Sprintf("%s=%v", k, meta[k]) })
	return fmt.Errorf("%w (%s)", converted, strings.Join(parts, ", "))
}
