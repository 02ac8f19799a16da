package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"movieRecommender/business/recommend"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliCatalog = `movie_id,movie_title,release_date,runtime,awards,director,Action,Adventure,Comedy,Drama
1,Heat,1995-12-15,170,1,Michael Mann,1,0,0,0
2,Raiders,1997-06-12,115,0,Steven Spielberg,1,1,0,0
3,Groundhog Day,1998-02-12,101,0,Harold Ramis,0,0,1,0
4,Ran,1985-06-01,162,1,Akira Kurosawa,0,0,0,1
`

const cliPreferences = `action-fan:
  min_release_year: 1990
  desired_genres: [Action, Adventure]
  prefer_award_winning: true
`

func writeFixtures(t *testing.T) (catalogPath, prefsPath string) {
	t.Helper()
	dir := t.TempDir()
	catalogPath = filepath.Join(dir, "movies.csv")
	prefsPath = filepath.Join(dir, "users.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(cliCatalog), 0o600))
	require.NoError(t, os.WriteFile(prefsPath, []byte(cliPreferences), 0o600))
	return catalogPath, prefsPath
}

// runCLI executes rootCmd with fresh flag values, since cobra keeps them on
// the package-level commands between runs.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	recommendCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--env", "test"}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRecommendCommand_Bandit(t *testing.T) {
	catalogPath, prefsPath := writeFixtures(t)

	out, err := runCLI(t, "recommend", "action-fan",
		"--catalog", catalogPath,
		"--preferences", prefsPath,
		"--bandit", "--seed", "42", "--epsilon", "0", "--top-k", "2")
	require.NoError(t, err)

	var res struct {
		Status  string `json:"status"`
		Results []struct {
			ID       int64   `json:"movie_id"`
			Score    float64 `json:"score"`
			Strategy string  `json:"pick_strategy"`
			Novel    *bool   `json:"novel"`
		} `json:"results"`
		Diagnostics struct {
			ExploitPoolSize int     `json:"exploit_pool_size"`
			ExploreRatio    float64 `json:"explore_ratio"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)

	assert.Equal(t, "ok", res.Status)
	require.Len(t, res.Results, 2)
	assert.Equal(t, int64(2), res.Results[0].ID)
	assert.InDelta(t, 2.0, res.Results[0].Score, 1e-9)
	assert.Equal(t, int64(1), res.Results[1].ID)
	assert.InDelta(t, 1.3, res.Results[1].Score, 1e-9)
	for _, r := range res.Results {
		assert.Equal(t, "exploit", r.Strategy)
		assert.NotNil(t, r.Novel)
	}
	assert.Equal(t, 3, res.Diagnostics.ExploitPoolSize)
	assert.Zero(t, res.Diagnostics.ExploreRatio)

	again, err := runCLI(t, "recommend", "action-fan",
		"--catalog", catalogPath,
		"--preferences", prefsPath,
		"--bandit", "--seed", "42", "--epsilon", "0", "--top-k", "2")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestRecommendCommand_Plain(t *testing.T) {
	catalogPath, prefsPath := writeFixtures(t)

	out, err := runCLI(t, "recommend", "action-fan", "--catalog", catalogPath, "--preferences", prefsPath)
	require.NoError(t, err)

	var res struct {
		Status  string `json:"status"`
		Results []struct {
			ID int64 `json:"movie_id"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)

	assert.Equal(t, "ok", res.Status)
	ids := make([]int64, len(res.Results))
	for i, r := range res.Results {
		ids[i] = r.ID
	}
	assert.Equal(t, []int64{2, 1, 3}, ids)
}

func TestRecommendCommand_UnknownUser(t *testing.T) {
	catalogPath, prefsPath := writeFixtures(t)

	_, err := runCLI(t, "recommend", "ghost", "--catalog", catalogPath, "--preferences", prefsPath)

	assert.ErrorIs(t, err, recommend.ErrUserNotFound)
}

func TestRecommendCommand_MissingFiles(t *testing.T) {
	catalogPath, _ := writeFixtures(t)

	_, err := runCLI(t, "recommend", "action-fan", "--catalog", filepath.Join(t.TempDir(), "none.csv"))
	assert.Error(t, err)

	_, err = runCLI(t, "recommend", "action-fan", "--catalog", catalogPath, "--preferences", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestReadPreferenceFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantIDs []string
		wantErr bool
	}{
		{"empty file", "", []string{}, false},
		{"two users sorted", "zoe:\n  min_release_year: 2000\nadam:\n  desired_genres: [Drama]\n", []string{"adam", "zoe"}, false},
		{"not a mapping", "- a\n- b\n", nil, true},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "prefs"+string(rune('a'+i))+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			prefs, err := readPreferenceFile(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, prefs)
			assert.Equal(t, tt.wantIDs, prefs.userIDs())

			_, ok, err := prefs.GetPreferences(t.Context(), "nobody")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}
