package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/topicdiv/pkg/topicdiv/internalerr"
)

func TestCleanText(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"plain   text\n here", "plain text here"},
		{"<p>Hello <b>world</b></p>", "Hello world"},
		{"fish &amp; chips", "fish & chips"},
		{"<script>alert(1)</script>visible", "visible"},
		{"line<br>break", "line break"},
		{"\ufb01ne", "fine"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CleanText(tc.in), "input %q", tc.in)
	}
}

func TestTexts(t *testing.T) {
	ds := &Dataset{
		Columns: []string{"id", "text"},
		Rows:    [][]string{{"1", "<i>deep</i> nets"}, {"2", "machine  learning"}},
	}
	texts, err := ds.Texts("text")
	require.NoError(t, err)
	assert.Equal(t, []string{"deep nets", "machine learning"}, texts)

	_, err = ds.Texts("body")
	assert.ErrorIs(t, err, internalerr.ErrNotFound)
}
