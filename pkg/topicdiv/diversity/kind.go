package diversity

import (
	"fmt"
	"strings"

	"github.com/cognicore/topicdiv/pkg/topicdiv/internalerr"
)

// Kind identifies the family of topic model being scored.
type Kind int

const (
	KindLDA Kind = iota + 1
	KindLSA
	KindNMF
	KindTop2Vec
	KindBERTopic
)

var kindNames = map[Kind]string{
	KindLDA:      "lda",
	KindLSA:      "lsa",
	KindNMF:      "nmf",
	KindTop2Vec:  "top2vec",
	KindBERTopic: "bertopic",
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindLDA, KindLSA, KindNMF, KindTop2Vec, KindBERTopic}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a model kind tag, ignoring case.
func ParseKind(s string) (Kind, error) {
	tag := strings.ToLower(s)
	for _, k := range Kinds() {
		if kindNames[k] == tag {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%q (choose from %s): %w", s, supportedList(), internalerr.ErrUnsupportedModelKind)
}

func supportedList() string {
	names := make([]string, 0, len(kindNames))
	for _, k := range Kinds() {
		names = append(names, kindNames[k])
	}
	return "[" + strings.Join(names, ", ") + "]"
}
