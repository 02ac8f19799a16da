package main

import (
	"encoding/json"
	"fmt"

	"movieRecommender/business/catalog"
	"movieRecommender/business/recommend"
	"movieRecommender/internal/repository/csvfile"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <user_id>",
	Short: "Print recommendations for one user from local files",
	Long: `recommend loads a CSV catalog and a YAML preference file and prints the
recommendations for one user as JSON. With --bandit the ε-greedy selector is
used; pass --seed for a reproducible result.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		flags := cmd.Flags()

		catalogPath, _ := flags.GetString("catalog")
		prefsPath, _ := flags.GetString("preferences")
		bandit, _ := flags.GetBool("bandit")

		movies, err := catalog.Load(ctx, csvfile.NewMovieReader(catalogPath))
		if err != nil {
			return err
		}
		prefs, err := readPreferenceFile(prefsPath)
		if err != nil {
			return err
		}

		cfg := recommend.DefaultConfig()
		cfg.DefaultRuntimeTolerance, _ = flags.GetInt("runtime-tolerance")
		svc := recommend.NewRecommendationService(movies, prefs, cfg)

		opts := svc.Defaults()
		opts.TopK, _ = flags.GetInt("top-k")
		opts.Epsilon, _ = flags.GetFloat64("epsilon")
		opts.CandidateWidth, _ = flags.GetInt("candidate-pool")
		opts.ExploreExtra, _ = flags.GetInt("explore-extra")
		if flags.Changed("seed") {
			seed, _ := flags.GetInt64("seed")
			opts.Seed = &seed
		}

		var out any
		if bandit {
			out, err = svc.RecommendWithExploration(ctx, args[0], opts)
		} else {
			out, err = svc.Recommend(ctx, args[0], opts.TopK)
		}
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		return nil
	},
}

func init() {
	d := recommend.DefaultConfig()

	recommendCmd.Flags().String("catalog", "data/movies.csv", "enriched movie CSV")
	recommendCmd.Flags().String("preferences", "data/users.yaml", "YAML preference file keyed by user id")
	recommendCmd.Flags().Bool("bandit", false, "use ε-greedy exploration")
	recommendCmd.Flags().Int("top-k", d.DefaultTopK, "number of results")
	recommendCmd.Flags().Float64("epsilon", d.DefaultEpsilon, "exploration probability in [0, 1]")
	recommendCmd.Flags().Int("candidate-pool", d.DefaultCandidateWidth, "exploit pool width")
	recommendCmd.Flags().Int("explore-extra", d.DefaultExploreExtra, "explore pool floor request")
	recommendCmd.Flags().Int("runtime-tolerance", d.DefaultRuntimeTolerance, "default runtime tolerance in minutes")
	recommendCmd.Flags().Int64("seed", 0, "random seed for reproducible selection")

	rootCmd.AddCommand(recommendCmd)
}
