package paths

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vikibrezinova/fast-coref/internal/config"
)

func TestResolveOntonotes(t *testing.T) {
	layout, err := Resolve("ontonotes", "/data", "", 0)
	require.NoError(t, err)
	require.Equal(t, "/data/ontonotes/independent", layout.DataDir)
	require.Equal(t, "/data/ontonotes/conll", layout.ConllDir)
}

func TestResolveLitbankWithSplit(t *testing.T) {
	layout, err := Resolve("litbank", "/data", "", 3)
	require.NoError(t, err)
	require.Equal(t, "/data/litbank/independent/3", layout.DataDir)
	require.Equal(t, "/data/litbank/conll/3", layout.ConllDir)
}

func TestResolveDatasetWithoutConllFormat(t *testing.T) {
	for _, dataset := range []string{"preco", "quizbowl", "wikicoref"} {
		layout, err := Resolve(dataset, "/data", "", 0)
		require.NoError(t, err)
		require.Equal(t, "/data", layout.DataDir)
		require.Empty(t, layout.ConllDir)
	}
}

func TestResolveLitbankOverride(t *testing.T) {
	layout, err := Resolve("litbank", "/data", "/scratch/litbank/independent", 2)
	require.NoError(t, err)
	require.Equal(t, "/scratch/litbank/independent/2", layout.DataDir)
	require.Equal(t, "/scratch/litbank/conll/2", layout.ConllDir)
}

func TestResolveLitbankOverrideTrailingSlash(t *testing.T) {
	layout, err := Resolve("litbank", "/data", "/scratch/litbank/independent/", 2)
	require.NoError(t, err)
	require.Equal(t, "/scratch/litbank/independent/2", layout.DataDir)
	require.Equal(t, "/scratch/litbank/conll/2", layout.ConllDir)
}

func TestResolveOntonotesOverride(t *testing.T) {
	layout, err := Resolve("ontonotes", "/data", "/scratch/ontonotes/independent", 0)
	require.NoError(t, err)
	require.Equal(t, "/scratch/ontonotes/independent", layout.DataDir)
	require.Equal(t, "/scratch/ontonotes/conll", layout.ConllDir)
}

func TestResolveOverrideVerbatimForOtherDatasets(t *testing.T) {
	layout, err := Resolve("wikicoref", "/data", "/scratch/wikicoref", 0)
	require.NoError(t, err)
	require.Equal(t, "/scratch/wikicoref", layout.DataDir)
	require.Empty(t, layout.ConllDir)
}

func TestResolveRejectsUnknownDataset(t *testing.T) {
	_, err := Resolve("not_a_dataset", "/data", "", 0)
	require.Error(t, err)

	var cfgErr *config.ConfigError
	require.True(t, errors.As(err, &cfgErr))
}
