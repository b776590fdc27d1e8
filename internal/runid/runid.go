// Package runid derives the deterministic run identifier for a
// training/evaluation configuration. Two configurations with the same
// dataset and the same significant option values always map to the
// same name, independent of how the option map was built.
package runid

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// encoderTag names the document encoder family and prefixes every run
// name. Changing it invalidates all existing run directories.
const encoderTag = "longformer"

// Name canonicalizes opts into the run name
// "longformer_<dataset>_<key1>_<val1>_<key2>_<val2>...", with entries
// sorted by key. An empty map yields the bare "longformer_<dataset>_"
// prefix.
func Name(dataset string, opts map[string]any) string {
	keys := sortedKeys(opts)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"_"+Render(opts[k]))
	}
	return encoderTag + "_" + dataset + "_" + strings.Join(parts, "_")
}

// Digest returns a short hex identifier over the canonical
// "key=type:value" form of opts. Unlike Name, the digest is
// collision-resistant across values of different types that render to
// the same string (the boolean true vs the string "true"); it is
// logged for operators but never used in paths.
func Digest(dataset string, opts map[string]any) string {
	h := sha256.New()
	io.WriteString(h, dataset+"\n")
	for _, k := range sortedKeys(opts) {
		io.WriteString(h, k+"="+typeTag(opts[k])+":"+Render(opts[k])+"\n")
	}
	return hex.EncodeToString(h.Sum(nil))[:12]
}

func typeTag(v any) string {
	switch v.(type) {
	case string:
		return "s"
	case bool:
		return "b"
	case int, int64:
		return "i"
	case float64:
		return "f"
	default:
		return "?"
	}
}

// Render converts a scalar option value to its canonical textual form:
// base-10 integers, shortest-form floats, true/false booleans, strings
// verbatim.
func Render(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

func sortedKeys(opts map[string]any) []string {
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
