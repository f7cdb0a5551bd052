package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/clients/api/v1alpha1"

	"github.com/KirkDiggler/rpg-casino/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-casino/internal/orchestrators/encounter"
)

var rollDiceCmd = &cobra.Command{
	Use:   "roll-dice [notation] [entity-id] [context]",
	Short: "Roll dice using dice notation",
	Long: `Roll dice and add them to a roll session. Examples:

  roll-dice 4d6dl1 player-1 character_stats
  roll-dice 6d6 enc_1 practice`,
	Args: cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		client, cleanup, err := createDiceClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.RollDice(ctx, &apiv1alpha1.RollDiceRequest{
			Notation: args[0],
			EntityId: args[1],
			Context:  args[2],
		})
		if err != nil {
			return fmt.Errorf("failed to roll dice: %w", err)
		}
		if jsonOutput {
			return printJSON(resp)
		}

		printRolls(os.Stdout, resp.Rolls)
		return nil
	},
}

var getRollSessionCmd = &cobra.Command{
	Use:   "roll-history [encounter-id] [turn|stats]",
	Short: "Show every roll of one encounter turn",
	Long: `Show the opening, roll-more and boss rolls of a turn, or the stat rolls
made when the encounter started. Examples:

  roll-history enc_1 1
  roll-history enc_1 stats`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		rollContext, err := historyContext(args[1])
		if err != nil {
			return err
		}

		client, cleanup, err := createDiceClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.GetRollSession(ctx, &apiv1alpha1.GetRollSessionRequest{
			EntityId: args[0],
			Context:  rollContext,
		})
		if err != nil {
			return fmt.Errorf("failed to get roll history: %w", err)
		}
		if jsonOutput {
			return printJSON(resp)
		}

		fmt.Printf("Roll history for %s %s (expires %s)\n",
			args[0], rollContext, time.Unix(resp.ExpiresAt, 0).Format(time.Kitchen))
		printRolls(os.Stdout, resp.Rolls)
		return nil
	},
}

// historyContext maps the user's turn argument onto a roll session context
func historyContext(arg string) (string, error) {
	if arg == "stats" {
		return dice.ContextCharacterStats, nil
	}
	turn, err := strconv.Atoi(arg)
	if err != nil || turn < 1 {
		return "", fmt.Errorf("turn must be a positive number or \"stats\", got %q", arg)
	}
	return encounter.TurnContext(turn), nil
}

func printRolls(w io.Writer, rolls []*apiv1alpha1.DiceRoll) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDESCRIPTION\tNOTATION\tDICE\tTOTAL\tDROPPED")
	for i, roll := range rolls {
		dropped := "-"
		if len(roll.Dropped) > 0 {
			dropped = fmt.Sprint(roll.Dropped)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%v\t%d\t%s\n",
			i+1, lo.Ternary(roll.Description == "", "-", roll.Description), roll.Notation, roll.Dice, roll.Total, dropped)
	}
	_ = tw.Flush()
}
