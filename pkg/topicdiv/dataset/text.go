package dataset

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/topicdiv/pkg/topicdiv/internalerr"
)

// Texts returns the named column as plain text: markup is stripped, the text
// is NFKC-normalised and runs of whitespace collapse to a single space.
func (d *Dataset) Texts(column string) ([]string, error) {
	values, ok := d.Column(column)
	if !ok {
		return nil, fmt.Errorf("column %q: %w", column, internalerr.ErrNotFound)
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = CleanText(v)
	}
	return out, nil
}

// CleanText strips HTML markup and entities from s and normalises it.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	text := s
	if strings.ContainsAny(s, "<&") {
		text = stripHTML(s)
	}
	return strings.Join(strings.Fields(norm.NFKC.String(text)), " ")
}

func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			buf.WriteString(n.Data)
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
			if n.Data == "br" || n.Data == "p" || n.Data == "div" {
				buf.WriteByte(' ')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(doc)

	return buf.String()
}
