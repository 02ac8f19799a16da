package main

import (
	"fmt"
	"os"

	"movieRecommender/pkg/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "movie-cli",
	Short: "Catalog and preference tooling for the movie recommender",
	Long: `movie-cli loads the enriched movie catalog and user preference files into
the recommender's database, and runs recommendations offline against a CSV
catalog without starting the server.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		env, _ := cmd.Flags().GetString("env")
		logger.Init(env)
	},
}

func init() {
	rootCmd.PersistentFlags().String("env", "production", "logging environment: development or production")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
