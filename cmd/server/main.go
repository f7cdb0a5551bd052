// Package main is the entry point for the casino gRPC server
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-casino/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-casino",
	Short: "Dice boss casino gRPC server",
	Long:  `rpg-casino runs the push-your-luck dice boss encounter behind a gRPC API.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("Note: .env file not loaded: %v", err)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(fixEncountersCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
