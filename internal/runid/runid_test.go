package runid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNameSortsKeys(t *testing.T) {
	opts := map[string]any{"seed": 7, "dropout_rate": 0.3}
	require.Equal(t, "longformer_litbank_dropout_rate_0.3_seed_7", Name("litbank", opts))
}

func TestNameDeterministicAcrossInsertionOrder(t *testing.T) {
	a := map[string]any{}
	a["seed"] = 11
	a["mem_type"] = "learned"
	a["max_ents"] = 30

	b := map[string]any{}
	b["max_ents"] = 30
	b["seed"] = 11
	b["mem_type"] = "learned"

	require.Equal(t, Name("ontonotes", a), Name("ontonotes", b))
	require.Equal(t, Digest("ontonotes", a), Digest("ontonotes", b))
}

func TestNameEmptyOpts(t *testing.T) {
	require.Equal(t, "longformer_ontonotes_", Name("ontonotes", nil))
}

func TestRenderCanonicalForms(t *testing.T) {
	require.Equal(t, "7", Render(7))
	require.Equal(t, "true", Render(true))
	require.Equal(t, "0.3", Render(0.3))
	require.Equal(t, "0.0003", Render(3e-4))
	require.Equal(t, "1e-05", Render(1e-5))
	require.Equal(t, "topk", Render("topk"))
}

func TestDigestShortHex(t *testing.T) {
	d := Digest("litbank", map[string]any{"seed": 7})
	require.Len(t, d, 12)
	require.Regexp(t, "^[0-9a-f]+$", d)
}

func TestDigestSensitiveToValues(t *testing.T) {
	base := Digest("litbank", map[string]any{"seed": 7})
	require.NotEqual(t, base, Digest("litbank", map[string]any{"seed": 8}))
	require.NotEqual(t, base, Digest("ontonotes", map[string]any{"seed": 7}))
}

func TestDigestSeparatesTypes(t *testing.T) {
	// The run name cannot tell these apart; the digest must.
	asBool := map[string]any{"use_gold_ments": true}
	asString := map[string]any{"use_gold_ments": "true"}
	require.Equal(t, Name("preco", asBool), Name("preco", asString))
	require.NotEqual(t, Digest("preco", asBool), Digest("preco", asString))
}
