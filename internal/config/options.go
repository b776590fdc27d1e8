package config

import (
	"os"
	"path/filepath"
)

// SignificantOpts is the fixed allow-list of options considered
// identity-relevant: hyperparameters that change model behavior or the
// data split. Options outside this list never contribute to the run
// name. The list is versioned here, next to the default table, so that
// drift between the two is caught by CheckDrift at startup.
var SignificantOpts = []string{
	"model_size", "max_segment_len", // encoder
	"ment_emb", "max_span_width", "top_span_ratio", // mention model
	"mem_type", "entity_rep", "mlp_size", // memory
	"dropout_rate", "seed", "init_lr", "max_epochs",
	"label_smoothing_wt", "ment_loss", // weights & sampling
	"num_train_docs", "sim_func", "fine_tune_lr", "doc_class",
}

// ExistsFunc answers whether a filesystem path exists. Significant
// takes it as an explicit collaborator because the singleton-file check
// couples run identity to filesystem state; tests substitute a fake to
// keep resolution deterministic.
type ExistsFunc func(path string) bool

// PathExists is the production ExistsFunc backed by os.Stat.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Significant returns the subset of allow-listed options whose value
// differs from the default table, plus two conditional extras:
//
//   - "singleton": the base name of the singleton mentions file, iff a
//     path was supplied and exists at call time. Deleting the file
//     before a rerun changes the run name.
//   - "cross_val_split": always present for litbank, even when the
//     split equals the default. Existing run directories depend on
//     this, so it is not suppressed.
//
// It fails with ConfigError if an allow-listed option has no default
// table entry (allow-list drift).
func (p *Params) Significant(exists ExistsFunc) (map[string]any, error) {
	if exists == nil {
		exists = PathExists
	}

	values := p.optionValues()
	opts := make(map[string]any)
	for _, name := range SignificantOpts {
		def, ok := defaultTable[name]
		if !ok {
			return nil, &ConfigError{Key: name, Reason: "significant option missing from default table"}
		}
		cur, ok := values[name]
		if !ok {
			return nil, &ConfigError{Key: name, Reason: "significant option missing from config"}
		}
		if cur != def {
			opts[name] = cur
		}
	}

	if p.SingletonFile != "" && exists(p.SingletonFile) {
		opts["singleton"] = filepath.Base(p.SingletonFile)
	}

	if p.Dataset == "litbank" {
		// The split selects the training fold, so it is part of the
		// identity whether or not it differs from the default.
		opts["cross_val_split"] = p.CrossValSplit
	}

	return opts, nil
}

// CheckDrift verifies the allow-list against the default table without
// resolving anything. Run it at startup so schema drift fails fast
// instead of producing a run name that silently omits an option.
func CheckDrift() error {
	for _, name := range SignificantOpts {
		if _, ok := defaultTable[name]; !ok {
			return &ConfigError{Key: name, Reason: "significant option missing from default table"}
		}
	}
	return nil
}

// optionValues exposes the identity-relevant fields keyed by option
// name, matching the default table's keys and scalar types.
func (p *Params) optionValues() map[string]any {
	return map[string]any{
		"model_size":         p.ModelSize,
		"max_segment_len":    p.MaxSegmentLen,
		"ment_emb":           p.MentEmb,
		"max_span_width":     p.MaxSpanWidth,
		"top_span_ratio":     p.TopSpanRatio,
		"mem_type":           p.MemType,
		"entity_rep":         p.EntityRep,
		"mlp_size":           p.MLPSize,
		"dropout_rate":       p.DropoutRate,
		"seed":               p.Seed,
		"init_lr":            p.InitLR,
		"max_epochs":         p.MaxEpochs,
		"label_smoothing_wt": p.LabelSmoothingWt,
		"ment_loss":          p.MentLoss,
		"num_train_docs":     p.NumTrainDocs,
		"sim_func":           p.SimFunc,
		"fine_tune_lr":       p.FineTuneLR,
		"doc_class":          p.DocClass,
		"cross_val_split":    p.CrossValSplit,
	}
}
