// Package nlpmodel adapts topic models fitted with github.com/james-bowman/nlp
// to the capability interfaces consumed by the diversity scorer.
package nlpmodel

import (
	"errors"
	"fmt"

	"github.com/james-bowman/nlp"
	"gonum.org/v1/gonum/mat"

	"github.com/cognicore/topicdiv/pkg/topicdiv/diversity"
	"github.com/cognicore/topicdiv/pkg/topicdiv/internalerr"
)

// Vocabulary inverts a fitted vectoriser's term index into a positional
// vocabulary list.
func Vocabulary(v *nlp.CountVectoriser) []string {
	if v == nil {
		return nil
	}
	vocab := make([]string, len(v.Vocabulary))
	for term, idx := range v.Vocabulary {
		if idx >= 0 && idx < len(vocab) {
			vocab[idx] = term
		}
	}
	return vocab
}

// LDA exposes a fitted LatentDirichletAllocation as a topic lister.
type LDA struct {
	model *nlp.LatentDirichletAllocation
	vocab []string
}

// NewLDA wraps a fitted model. vocab maps the component columns to terms.
func NewLDA(model *nlp.LatentDirichletAllocation, vocab []string) (*LDA, error) {
	if model == nil {
		return nil, fmt.Errorf("nil lda model: %w", internalerr.ErrInvalidArgument)
	}
	if err := checkColumns(model.Components(), vocab); err != nil {
		return nil, err
	}
	return &LDA{model: model, vocab: vocab}, nil
}

// ShowTopics lists every topic with its numWords most probable terms.
func (l *LDA) ShowTopics(numWords int) []diversity.Topic {
	return topicsFromRows(l.model.Components(), l.vocab, numWords, diversity.TopIndices)
}

// Components returns the topic over words matrix.
func (l *LDA) Components() mat.Matrix {
	return l.model.Components()
}

// LSA exposes a fitted TruncatedSVD as a topic lister. Terms are ranked by the
// magnitude of their loading; the returned weight keeps its sign.
type LSA struct {
	svd   *nlp.TruncatedSVD
	vocab []string
}

// NewLSA wraps a fitted TruncatedSVD whose Components are terms x k.
func NewLSA(svd *nlp.TruncatedSVD, vocab []string) (*LSA, error) {
	if svd == nil || svd.Components == nil {
		return nil, fmt.Errorf("lsa model is not fitted: %w", internalerr.ErrInvalidArgument)
	}
	if err := checkColumns(svd.Components.T(), vocab); err != nil {
		return nil, err
	}
	return &LSA{svd: svd, vocab: vocab}, nil
}

// ShowTopics lists every latent dimension with its numWords strongest terms.
func (l *LSA) ShowTopics(numWords int) []diversity.Topic {
	return topicsFromRows(l.svd.Components.T(), l.vocab, numWords, diversity.TopIndicesAbs)
}

var errVocabMismatch = errors.New("vocabulary does not cover model terms")

func checkColumns(m mat.Matrix, vocab []string) error {
	if m == nil {
		return fmt.Errorf("model has no components: %w", internalerr.ErrInvalidArgument)
	}
	_, cols := m.Dims()
	if cols > len(vocab) {
		return fmt.Errorf("%w: %d terms, %d vocabulary entries: %w",
			errVocabMismatch, cols, len(vocab), internalerr.ErrInvalidArgument)
	}
	return nil
}

func topicsFromRows(m mat.Matrix, vocab []string, n int, rank func([]float64, int) []int) []diversity.Topic {
	rows, _ := m.Dims()
	topics := make([]diversity.Topic, rows)
	for r := 0; r < rows; r++ {
		weights := mat.Row(nil, r, m)
		top := rank(weights, n)
		topic := diversity.Topic{ID: r, Words: make([]diversity.WeightedWord, len(top))}
		for j, i := range top {
			topic.Words[j] = diversity.WeightedWord{Word: vocab[i], Weight: weights[i]}
		}
		topics[r] = topic
	}
	return topics
}
