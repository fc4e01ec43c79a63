package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunStrengthExperiment(t *testing.T) {
	t.Run("plays every matchup and stores results", func(t *testing.T) {
		outputDir := t.TempDir()

		err := RunStrengthExperiment(Settings{
			Games:      1,
			Goroutines: 2,
			OutputDir:  outputDir,
		})
		require.NoError(t, err)

		runs, err := os.ReadDir(outputDir)
		require.NoError(t, err)
		require.Len(t, runs, 1, "One timestamped run directory")

		runDir := filepath.Join(outputDir, runs[0].Name())
		for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			_, err := os.Stat(filepath.Join(runDir, name))
			require.NoError(t, err, "Should have written %s", name)
		}
	})
}
