package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestDoctorCommand(t *testing.T) {
	out, err := execute(t, "doctor", "--dataset", "litbank")
	require.NoError(t, err)
	require.Contains(t, out, "Config OK")
	require.Contains(t, out, "litbank")
}

func TestResolveCommandPrintsRunName(t *testing.T) {
	out, err := execute(t, "resolve", "--dataset", "ontonotes", "--seed", "13")
	require.NoError(t, err)
	require.Contains(t, out, "longformer_ontonotes_seed_13")
	require.Contains(t, out, "seed: 13")
}

func TestResolveRejectsUnknownDataset(t *testing.T) {
	_, err := execute(t, "resolve", "--dataset", "not_a_dataset")
	require.Error(t, err)
}

func TestLaunchBootstrapsWorkspace(t *testing.T) {
	modelRoot := t.TempDir()

	_, err := execute(t, "launch",
		"--base_model_dir", modelRoot,
		"--base_data_dir", "/data",
		"--dataset", "ontonotes",
		"--dropout_rate", "0.5",
		"--log_level", "error",
	)
	require.NoError(t, err)

	runDir := filepath.Join(modelRoot, "longformer_ontonotes_dropout_rate_0.5")
	require.DirExists(t, runDir)
	require.DirExists(t, filepath.Join(runDir, "best_models"))
	require.DirExists(t, filepath.Join(runDir, "logs"))

	record, err := os.ReadFile(filepath.Join(runDir, "config"))
	require.NoError(t, err)
	require.Equal(t, "dropout_rate: 0.5\n", string(record))
}

func TestLaunchIsRepeatable(t *testing.T) {
	modelRoot := t.TempDir()
	args := []string{"launch",
		"--base_model_dir", modelRoot,
		"--dataset", "preco",
		"--log_level", "error",
	}

	_, err := execute(t, args...)
	require.NoError(t, err)
	_, err = execute(t, args...)
	require.NoError(t, err)
}
