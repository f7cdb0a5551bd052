package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	redisclient "github.com/KirkDiggler/rpg-casino/internal/redis"
	"github.com/KirkDiggler/rpg-casino/internal/repositories/encounters"
)

var fixYes bool

var fixEncountersCmd = &cobra.Command{
	Use:   "fix-encounters",
	Short: "Find and delete stored encounters that can no longer be played",
	Long: `Scans redis for encounter records whose JSON does not decode or whose dice
state is invalid, lists them, and deletes them after confirmation.`,
	RunE: runFixEncounters,
}

func init() {
	fixEncountersCmd.Flags().StringVar(&redisAddr, "redis", "", "redis address (overrides CASINO_REDIS_ADDR)")
	fixEncountersCmd.Flags().BoolVarP(&fixYes, "yes", "y", false, "delete without asking")
}

func runFixEncounters(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !cfg.UseRedis() {
		return fmt.Errorf("a redis address is required (--redis or CASINO_REDIS_ADDR)")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if err := redisclient.Ping(ctx, client); err != nil {
		return err
	}

	return fixEncounters(ctx, client, cmd.InOrStdin(), cmd.OutOrStdout(), fixYes)
}

func fixEncounters(ctx context.Context, client redisclient.Client, in io.Reader, out io.Writer, yes bool) error {
	output, err := encounters.FindCorrupted(ctx, client)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Checked %d encounters, found %d corrupted\n", output.Checked, len(output.Corrupt))
	if len(output.Corrupt) == 0 {
		return nil
	}

	keys := make([]string, 0, len(output.Corrupt))
	for _, c := range output.Corrupt {
		fmt.Fprintf(out, "  - %s: %s\n", c.Key, c.Reason)
		keys = append(keys, c.Key)
	}

	if !yes {
		fmt.Fprint(out, "Delete these encounters? (yes/no): ")
		answer, _ := bufio.NewReader(in).ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Fprintln(out, "Aborted, no changes made")
			return nil
		}
	}

	deleted, err := encounters.DeleteKeys(ctx, client, keys)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted %d encounters\n", deleted)
	return nil
}
