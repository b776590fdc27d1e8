package experiment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vikibrezinova/fast-coref/internal/config"
)

func TestDefaultEnvDisablesTokenizerParallelism(t *testing.T) {
	env := DefaultEnv()
	require.Equal(t, "false", env["TOKENIZERS_PARALLELISM"])
}

func TestDefaultRunnerCompletes(t *testing.T) {
	runner := New(nil)
	err := runner.Run(context.Background(), Settings{
		Params:  &config.Params{Dataset: "ontonotes"},
		RunName: "longformer_ontonotes_",
		Env:     DefaultEnv(),
	})
	require.NoError(t, err)
}

func TestDefaultRunnerHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := New(nil)
	err := runner.Run(ctx, Settings{
		Params:  &config.Params{Dataset: "ontonotes"},
		RunName: "longformer_ontonotes_",
	})
	require.ErrorIs(t, err, context.Canceled)
}
