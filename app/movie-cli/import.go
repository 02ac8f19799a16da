package main

import (
	"fmt"

	"movieRecommender/business/catalog"
	"movieRecommender/business/preference"
	"movieRecommender/internal/repository/csvfile"
	psqlRepo "movieRecommender/internal/repository/postgres"
	"movieRecommender/pkg/config"
	"movieRecommender/pkg/database"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var importCatalogCmd = &cobra.Command{
	Use:   "import-catalog <movies.csv>",
	Short: "Load an enriched movie CSV into the movies table",
	Long: `import-catalog reads movie_id, movie_title, release_date, runtime, awards,
director and the genre flag columns from a CSV file and upserts them into
the movies table. Rows with the same movie_id are replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(cmd)
		if err != nil {
			return err
		}

		n, err := catalog.Import(cmd.Context(), csvfile.NewMovieReader(args[0]), psqlRepo.NewMovieRepository(db))
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "imported %d movies\n", n)
		return nil
	},
}

var importPreferencesCmd = &cobra.Command{
	Use:   "import-preferences <users.yaml>",
	Short: "Load user preference profiles from a YAML file",
	Long: `import-preferences reads a YAML document mapping user ids to preference
profiles and saves each one, validating it the same way the HTTP API does.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := readPreferenceFile(args[0])
		if err != nil {
			return err
		}

		db, err := openDB(cmd)
		if err != nil {
			return err
		}

		svc := preference.NewService(psqlRepo.NewPreferenceRepository(db), validator.New())
		for _, id := range prefs.userIDs() {
			if err := svc.Save(cmd.Context(), id, prefs[id]); err != nil {
				return fmt.Errorf("user %s: %w", id, err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "imported %d users\n", len(prefs))
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{importCatalogCmd, importPreferencesCmd} {
		c.Flags().Bool("migrate", true, "create or update tables before importing")
		rootCmd.AddCommand(c)
	}
}

func openDB(cmd *cobra.Command) (*gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	db, err := database.InitPostgres(cfg)
	if err != nil {
		return nil, err
	}

	if migrate, _ := cmd.Flags().GetBool("migrate"); migrate {
		if err := psqlRepo.Migrate(cmd.Context(), db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

