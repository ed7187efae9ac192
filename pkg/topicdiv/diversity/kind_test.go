package diversity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/topicdiv/pkg/topicdiv/internalerr"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
	}{
		{"lda", KindLDA},
		{"LDA", KindLDA},
		{"Lsa", KindLSA},
		{"nmf", KindNMF},
		{"TOP2VEC", KindTop2Vec},
		{"BERTopic", KindBERTopic},
	}
	for _, tc := range cases {
		got, err := ParseKind(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseKindRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "foo", " lda", "top2vec2"} {
		_, err := ParseKind(in)
		assert.ErrorIs(t, err, internalerr.ErrUnsupportedModelKind, in)
	}
}

func TestKindString(t *testing.T) {
	for _, k := range Kinds() {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestEveryKindHasExtractor(t *testing.T) {
	for _, k := range Kinds() {
		_, ok := extractors[k]
		assert.True(t, ok, k.String())
	}
}
