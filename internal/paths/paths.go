// Package paths computes dataset-specific input and reference
// directory layouts. Resolution is pure string manipulation: no
// directory is checked or created here.
package paths

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vikibrezinova/fast-coref/internal/config"
)

// Layout holds the resolved data directories for a run. ConllDir is
// empty for datasets without a reference-scorer format.
type Layout struct {
	DataDir  string
	ConllDir string
}

// Resolve computes the layout for dataset under baseDataDir, or under
// overrideDir when one is given.
//
// Without an override, litbank and ontonotes follow the standard
// <root>/<dataset>/independent[/<split>] layout with a sibling conll
// tree. An override is treated as already containing the dataset
// segment: litbank appends the split as a direct child and both
// datasets derive the conll tree from the override's parent. Any other
// dataset uses the given directory verbatim and has no conll tree.
func Resolve(dataset, baseDataDir, overrideDir string, crossValSplit int) (Layout, error) {
	if !config.IsDataset(dataset) {
		return Layout{}, &config.ConfigError{Key: "dataset", Reason: "unsupported dataset " + strconv.Quote(dataset)}
	}

	split := strconv.Itoa(crossValSplit)

	if overrideDir == "" {
		switch dataset {
		case "litbank":
			return Layout{
				DataDir:  filepath.Join(baseDataDir, dataset, "independent", split),
				ConllDir: filepath.Join(baseDataDir, dataset, "conll", split),
			}, nil
		case "ontonotes":
			return Layout{
				DataDir:  filepath.Join(baseDataDir, dataset, "independent"),
				ConllDir: filepath.Join(baseDataDir, dataset, "conll"),
			}, nil
		default:
			return Layout{DataDir: baseDataDir}, nil
		}
	}

	parent := filepath.Dir(strings.TrimRight(overrideDir, "/"))
	switch dataset {
	case "litbank":
		return Layout{
			DataDir:  filepath.Join(overrideDir, split),
			ConllDir: filepath.Join(parent, "conll", split),
		}, nil
	case "ontonotes":
		return Layout{
			DataDir:  overrideDir,
			ConllDir: filepath.Join(parent, "conll"),
		}, nil
	default:
		return Layout{DataDir: overrideDir}, nil
	}
}
