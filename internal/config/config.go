package config

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Datasets is the closed set of supported corpora. Path resolution and
// run naming are defined only for these identifiers.
var Datasets = []string{"litbank", "ontonotes", "preco", "quizbowl", "wikicoref"}

// IsDataset reports whether name is a supported dataset identifier.
func IsDataset(name string) bool {
	for _, d := range Datasets {
		if d == name {
			return true
		}
	}
	return false
}

// Params holds the fully resolved launcher configuration: directory
// roots, the dataset selection, and every model/training hyperparameter.
// Values come from flags, with COREF_-prefixed environment variables as
// overrides and the default table as fallback.
type Params struct {
	// Directory roots and dataset selection.
	BaseDataDir   string `mapstructure:"base_data_dir"`
	DataDir       string `mapstructure:"data_dir"`
	SingletonFile string `mapstructure:"singleton_file"`
	BaseModelDir  string `mapstructure:"base_model_dir"`
	ModelDir      string `mapstructure:"model_dir"`
	Dataset       string `mapstructure:"dataset"`
	ConllScorer   string `mapstructure:"conll_scorer"`

	// Encoder.
	ModelSize     string `mapstructure:"model_size"`
	MaxSegmentLen int    `mapstructure:"max_segment_len"`

	// Mention model.
	MaxSpanWidth int     `mapstructure:"max_span_width"`
	MentEmb      string  `mapstructure:"ment_emb"`
	UseGoldMents bool    `mapstructure:"use_gold_ments"`
	TopSpanRatio float64 `mapstructure:"top_span_ratio"`

	// Memory model.
	MemType        string `mapstructure:"mem_type"`
	MLPSize        int    `mapstructure:"mlp_size"`
	ClusterMLPSize int    `mapstructure:"cluster_mlp_size"`
	MLPDepth       int    `mapstructure:"mlp_depth"`
	EntityRep      string `mapstructure:"entity_rep"`
	SimFunc        string `mapstructure:"sim_func"`
	EmbSize        int    `mapstructure:"emb_size"`
	MaxEnts        int    `mapstructure:"max_ents"`
	EvalMaxEnts    int    `mapstructure:"eval_max_ents"`
	DocClass       string `mapstructure:"doc_class"`

	// Training schedule.
	CrossValSplit       int     `mapstructure:"cross_val_split"`
	NumTrainDocs        int     `mapstructure:"num_train_docs"`
	NumEvalDocs         int     `mapstructure:"num_eval_docs"`
	DropoutRate         float64 `mapstructure:"dropout_rate"`
	LabelSmoothingWt    float64 `mapstructure:"label_smoothing_wt"`
	MentLoss            string  `mapstructure:"ment_loss"`
	MaxEpochs           int     `mapstructure:"max_epochs"`
	Seed                int     `mapstructure:"seed"`
	MaxGradientNorm     float64 `mapstructure:"max_gradient_norm"`
	InitLR              float64 `mapstructure:"init_lr"`
	FineTuneLR          float64 `mapstructure:"fine_tune_lr"`
	EvalPerKSteps       int     `mapstructure:"eval_per_k_steps"`
	UpdateFrequency     int     `mapstructure:"update_frequency"`
	MaxTrainingSegments int     `mapstructure:"max_training_segments"`
	ToSaveModel         bool    `mapstructure:"to_save_model"`
	EvalModel           bool    `mapstructure:"eval"`
	SlurmID             string  `mapstructure:"slurm_id"`

	// Logging.
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// defaultTable is the single source of truth for option defaults. Flag
// registration, viper defaults, and the significant-option diffing in
// options.go all read from it, so allow-list drift is detectable at
// startup instead of surfacing as a run-name mismatch.
var defaultTable = map[string]any{
	"base_data_dir":  "../data/",
	"data_dir":       "",
	"singleton_file": "",
	"base_model_dir": "../models",
	"model_dir":      "",
	"dataset":        "ontonotes",
	"conll_scorer":   "../resources/lrec2020-coref/reference-coreference-scorers/scorer.pl",

	"model_size":      "large",
	"max_segment_len": 2048,

	"max_span_width": 20,
	"ment_emb":       "attn",
	"use_gold_ments": false,
	"top_span_ratio": 0.4,

	"mem_type":         "unbounded",
	"mlp_size":         3000,
	"cluster_mlp_size": 3000,
	"mlp_depth":        1,
	"entity_rep":       "wt_avg",
	"sim_func":         "hadamard",
	"emb_size":         20,
	"max_ents":         20,
	"eval_max_ents":    0,
	"doc_class":        "",

	"cross_val_split":       0,
	"num_train_docs":        0,
	"num_eval_docs":         0,
	"dropout_rate":          0.3,
	"label_smoothing_wt":    0.1,
	"ment_loss":             "topk",
	"max_epochs":            25,
	"seed":                  0,
	"max_gradient_norm":     1.0,
	"init_lr":               3e-4,
	"fine_tune_lr":          1e-5,
	"eval_per_k_steps":      0,
	"update_frequency":      500,
	"max_training_segments": 0,
	"to_save_model":         true,
	"eval":                  false,
	"slurm_id":              "",

	"log_level":  "info",
	"log_format": "console",
}

func defStr(name string) string    { return defaultTable[name].(string) }
func defInt(name string) int       { return defaultTable[name].(int) }
func defBool(name string) bool     { return defaultTable[name].(bool) }
func defFloat(name string) float64 { return defaultTable[name].(float64) }

// RegisterFlags declares every launcher flag on fs, with defaults taken
// from the default table.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("base_data_dir", defStr("base_data_dir"), "Root directory of data")
	fs.String("data_dir", defStr("data_dir"), "Explicit data directory; overrides the base_data_dir layout")
	fs.String("singleton_file", defStr("singleton_file"), "Singleton mentions separately extracted for training")
	fs.String("base_model_dir", defStr("base_model_dir"), "Root folder storing model runs")
	fs.String("model_dir", defStr("model_dir"), "Explicit model directory; reuses a prior run")
	fs.String("dataset", defStr("dataset"), "Dataset: "+strings.Join(Datasets, "|"))
	fs.String("conll_scorer", defStr("conll_scorer"), "Path to the reference coreference scorer")

	fs.String("model_size", defStr("model_size"), "Encoder model size")
	fs.Int("max_segment_len", defInt("max_segment_len"), "Max segment length of windowed inputs")

	fs.Int("max_span_width", defInt("max_span_width"), "Max span width")
	fs.String("ment_emb", defStr("ment_emb"), "Mention embedding: attn|endpoint")
	fs.Bool("use_gold_ments", defBool("use_gold_ments"), "Use gold mentions")
	fs.Float64("top_span_ratio", defFloat("top_span_ratio"), "Ratio of top spans proposed as mentions")

	fs.String("mem_type", defStr("mem_type"), "Memory type: learned|lru|unbounded|unbounded_no_ignore")
	fs.Int("mlp_size", defInt("mlp_size"), "MLP size used in the model")
	fs.Int("cluster_mlp_size", defInt("cluster_mlp_size"), "Cluster MLP size used in the model")
	fs.Int("mlp_depth", defInt("mlp_depth"), "Number of hidden layers in other MLPs")
	fs.String("entity_rep", defStr("entity_rep"), "Entity representation: learned_avg|wt_avg|max")
	fs.String("sim_func", defStr("sim_func"), "Similarity function: hadamard|cosine|endpoint")
	fs.Int("emb_size", defInt("emb_size"), "Embedding size of features")
	fs.Int("max_ents", defInt("max_ents"), "Maximum entities in memory (bounded memory only)")
	fs.Int("eval_max_ents", defInt("eval_max_ents"), "Maximum entities in memory during inference (0 = same as training)")
	fs.String("doc_class", defStr("doc_class"), "Document class information to use: dialog|genre")

	fs.Int("cross_val_split", defInt("cross_val_split"), "Cross validation split to be used")
	fs.Int("num_train_docs", defInt("num_train_docs"), "Number of training docs (0 = all)")
	fs.Int("num_eval_docs", defInt("num_eval_docs"), "Number of evaluation docs (0 = all)")
	fs.Float64("dropout_rate", defFloat("dropout_rate"), "Dropout rate")
	fs.Float64("label_smoothing_wt", defFloat("label_smoothing_wt"), "Label smoothing weight")
	fs.String("ment_loss", defStr("ment_loss"), "Mention loss over: all|topk")
	fs.Int("max_epochs", defInt("max_epochs"), "Maximum number of epochs")
	fs.Int("seed", defInt("seed"), "Random seed to get different runs")
	fs.Float64("max_gradient_norm", defFloat("max_gradient_norm"), "Maximum gradient norm")
	fs.Float64("init_lr", defFloat("init_lr"), "Initial learning rate")
	fs.Float64("fine_tune_lr", defFloat("fine_tune_lr"), "Fine-tuning learning rate")
	fs.Int("eval_per_k_steps", defInt("eval_per_k_steps"), "Evaluate on dev set every k steps (0 = per epoch)")
	fs.Int("update_frequency", defInt("update_frequency"), "Gradient update frequency")
	fs.Int("max_training_segments", defInt("max_training_segments"), "Max segments per training document (0 = unlimited)")
	fs.Bool("to_save_model", defBool("to_save_model"), "Save model checkpoints during training")
	fs.Bool("eval", defBool("eval"), "Evaluate an existing model instead of training")
	fs.String("slurm_id", defStr("slurm_id"), "Slurm job ID")

	fs.String("log_level", defStr("log_level"), "Log level: debug|info|warn|error")
	fs.String("log_format", defStr("log_format"), "Log format: console|json")
}

// Load resolves the launcher configuration from the given flag set.
// Environment variables override unset flags (prefix: COREF_, option
// names upper-cased). Eval mode clears the training-segment limit so a
// model trained on truncated documents scores full documents.
func Load(fs *pflag.FlagSet) (*Params, error) {
	v := viper.New()
	for name, val := range defaultTable {
		v.SetDefault(name, val)
	}

	v.SetEnvPrefix("COREF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, &ConfigError{Reason: "bind flags: " + err.Error()}
	}

	var p Params
	if err := v.Unmarshal(&p); err != nil {
		return nil, &ConfigError{Reason: "unmarshal config: " + err.Error()}
	}

	if p.EvalModel {
		p.MaxTrainingSegments = 0
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate performs closed-set and range checks on hyperparameters.
func (p *Params) Validate() error {
	if !IsDataset(p.Dataset) {
		return &ConfigError{Key: "dataset", Reason: "unsupported dataset " + strconv.Quote(p.Dataset)}
	}

	if err := oneOf("ment_emb", p.MentEmb, "attn", "endpoint"); err != nil {
		return err
	}
	if err := oneOf("mem_type", p.MemType, "learned", "lru", "unbounded", "unbounded_no_ignore"); err != nil {
		return err
	}
	if err := oneOf("entity_rep", p.EntityRep, "learned_avg", "wt_avg", "max"); err != nil {
		return err
	}
	if err := oneOf("sim_func", p.SimFunc, "hadamard", "cosine", "endpoint"); err != nil {
		return err
	}
	if err := oneOf("ment_loss", p.MentLoss, "all", "topk"); err != nil {
		return err
	}
	if err := oneOf("doc_class", p.DocClass, "", "dialog", "genre"); err != nil {
		return err
	}

	if p.MaxSegmentLen <= 0 {
		return &ConfigError{Key: "max_segment_len", Reason: "must be > 0"}
	}
	if p.MaxSpanWidth <= 0 {
		return &ConfigError{Key: "max_span_width", Reason: "must be > 0"}
	}
	if p.TopSpanRatio <= 0 || p.TopSpanRatio > 1 {
		return &ConfigError{Key: "top_span_ratio", Reason: "must be within (0,1]"}
	}
	if p.DropoutRate < 0 || p.DropoutRate >= 1 {
		return &ConfigError{Key: "dropout_rate", Reason: "must be within [0,1)"}
	}
	if p.MLPSize <= 0 {
		return &ConfigError{Key: "mlp_size", Reason: "must be > 0"}
	}
	if p.MaxEpochs <= 0 {
		return &ConfigError{Key: "max_epochs", Reason: "must be > 0"}
	}
	if p.MaxEnts <= 0 {
		return &ConfigError{Key: "max_ents", Reason: "must be > 0"}
	}
	if p.CrossValSplit < 0 {
		return &ConfigError{Key: "cross_val_split", Reason: "must be >= 0"}
	}
	if p.InitLR <= 0 {
		return &ConfigError{Key: "init_lr", Reason: "must be > 0"}
	}
	if p.FineTuneLR <= 0 {
		return &ConfigError{Key: "fine_tune_lr", Reason: "must be > 0"}
	}
	if p.MaxGradientNorm <= 0 {
		return &ConfigError{Key: "max_gradient_norm", Reason: "must be > 0"}
	}

	return nil
}

func oneOf(key, val string, choices ...string) error {
	for _, c := range choices {
		if val == c {
			return nil
		}
	}
	return &ConfigError{Key: key, Reason: strconv.Quote(val) + " is not one of " + strings.Join(choices, "|")}
}
