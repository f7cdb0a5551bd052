package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-casino/cmd/server/client"
	casinov1alpha1 "github.com/KirkDiggler/rpg-casino/internal/api/casino/v1alpha1"
	"github.com/KirkDiggler/rpg-casino/internal/engine/diceboss"
	casinohandler "github.com/KirkDiggler/rpg-casino/internal/handlers/casino/v1alpha1"
)

var playerName string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a dice boss encounter in the terminal",
	Long: `Play against the dice boss without a server. Commands:

  h <die-id...>  hold or release dice (ids 0-5)
  r              bank the held dice and roll the rest
  p              bank the held dice and end your turn
  q              quit`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playerName, "name", "Player", "player name")
	playCmd.Flags().Int64Var(&diceSeed, "seed", 0, "seed for reproducible dice (overrides CASINO_DICE_SEED)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.RedisAddr = ""

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, closeServices, err := buildServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeServices()

	handler, err := casinohandler.NewHandler(&casinohandler.HandlerConfig{EncounterService: svc.encounter})
	if err != nil {
		return err
	}

	return play(ctx, handler, os.Stdin, playerName)
}

func play(ctx context.Context, h casinov1alpha1.DiceBossServiceServer, in io.Reader, name string) error {
	start, err := h.StartEncounter(ctx, &casinov1alpha1.StartEncounterRequest{
		PlayerId:   strings.ToLower(name),
		PlayerName: name,
	})
	if err != nil {
		return err
	}
	enc := start.Encounter
	client.PrintTurn("You", enc.LastPlayerTurn)

	scanner := bufio.NewScanner(in)
	for {
		client.PrintEncounter(enc)

		switch {
		case enc.Status != "active":
			if enc.Status == "victory" {
				fmt.Println("\nThe boss falls. You win!")
			} else {
				fmt.Println("\nYou have been defeated.")
			}
			return nil

		case diceboss.Phase(enc.Pool.Phase) == diceboss.PhaseTurnEnded:
			resp, err := h.BossTurn(ctx, &casinov1alpha1.BossTurnRequest{EncounterId: enc.GetId()})
			if err != nil {
				return err
			}
			client.PrintTurn("The boss", resp.Turn)
			if resp.NextOpening != nil && resp.NextOpening.Busted {
				client.PrintTurn("You", resp.Encounter.LastPlayerTurn)
			}
			enc = resp.Encounter
			continue
		}

		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		next, err := playCommand(ctx, h, enc.GetId(), fields)
		if err != nil {
			return err
		}
		if next == nil {
			return nil
		}
		enc = next
	}
}

// playCommand runs one typed command. It returns a nil encounter on quit.
func playCommand(
	ctx context.Context, h casinov1alpha1.DiceBossServiceServer, encounterID string, fields []string,
) (*casinov1alpha1.Encounter, error) {
	switch fields[0] {
	case "q":
		return nil, nil

	case "h":
		var enc *casinov1alpha1.Encounter
		for _, arg := range fields[1:] {
			id, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Printf("Not a die id: %s\n", arg)
				continue
			}
			resp, err := h.ToggleDie(ctx, &casinov1alpha1.ToggleDieRequest{EncounterId: encounterID, DieId: int32(id)})
			if err != nil {
				return nil, err
			}
			if !resp.Changed {
				fmt.Printf("Die %d cannot be toggled\n", id)
			}
			enc = resp.Encounter
		}
		if enc == nil {
			return reload(ctx, h, encounterID)
		}
		return enc, nil

	case "r":
		resp, err := h.RollMore(ctx, &casinov1alpha1.RollMoreRequest{EncounterId: encounterID})
		if err != nil {
			return nil, err
		}
		client.PrintRejection(resp.Rejection)
		if resp.Outcome != nil && resp.Outcome.HotHand {
			fmt.Println("Hot hand! All six dice are back in play.")
		}
		client.PrintTurn("You", resp.Turn)
		return resp.Encounter, nil

	case "p":
		resp, err := h.Pass(ctx, &casinov1alpha1.PassRequest{EncounterId: encounterID})
		if err != nil {
			return nil, err
		}
		client.PrintRejection(resp.Rejection)
		client.PrintTurn("You", resp.Turn)
		return resp.Encounter, nil
	}

	fmt.Println("Commands: h <die-id...>, r, p, q")
	return reload(ctx, h, encounterID)
}

func reload(
	ctx context.Context, h casinov1alpha1.DiceBossServiceServer, encounterID string,
) (*casinov1alpha1.Encounter, error) {
	resp, err := h.GetEncounter(ctx, &casinov1alpha1.GetEncounterRequest{EncounterId: encounterID})
	if err != nil {
		return nil, err
	}
	return resp.Encounter, nil
}
