// Package export loads topic models exported by external tooling. Topic
// tables are read from YAML; JSON exports are accepted as the YAML subset
// they are.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/topicdiv/pkg/topicdiv/diversity"
	"github.com/cognicore/topicdiv/pkg/topicdiv/internalerr"
)

// Export is the on-disk form of a trained topic model.
type Export struct {
	Kind       string      `yaml:"kind"`
	Vocabulary []string    `yaml:"vocabulary,omitempty"`
	Topics     []Topic     `yaml:"topics,omitempty"`
	Components [][]float64 `yaml:"components,omitempty"`
}

// Topic is one exported topic. Word-weight models fill Words; phrase models
// (top2vec) fill Phrases.
type Topic struct {
	ID      int                      `yaml:"id"`
	Words   []diversity.WeightedWord `yaml:"words,omitempty"`
	Phrases []string                 `yaml:"phrases,omitempty"`
}

// LoadFile reads an export from a .yaml, .yml or .json file.
func LoadFile(path string) (*Export, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("export %s: unknown format: %w", path, internalerr.ErrInvalidInput)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	exp, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", path, err)
	}
	return exp, nil
}

// Load decodes and validates an export.
func Load(r io.Reader) (*Export, error) {
	var exp Export
	if err := yaml.NewDecoder(r).Decode(&exp); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty export: %w", internalerr.ErrInvalidInput)
		}
		return nil, fmt.Errorf("decode: %v: %w", err, internalerr.ErrInvalidInput)
	}
	if err := exp.Validate(); err != nil {
		return nil, err
	}
	return &exp, nil
}

// Validate checks that the export carries what its kind needs.
func (e *Export) Validate() error {
	kind, err := diversity.ParseKind(e.Kind)
	if err != nil {
		return err
	}
	switch kind {
	case diversity.KindNMF:
		if len(e.Components) == 0 {
			return fmt.Errorf("nmf export has no components: %w", internalerr.ErrInvalidInput)
		}
		width := len(e.Components[0])
		for i, row := range e.Components {
			if len(row) != width || width == 0 {
				return fmt.Errorf("component row %d has %d weights, want %d: %w", i, len(row), width, internalerr.ErrInvalidInput)
			}
		}
	case diversity.KindTop2Vec:
		for _, t := range e.Topics {
			if len(t.Words) > 0 && len(t.Phrases) == 0 {
				return fmt.Errorf("top2vec topic %d has words but no phrases: %w", t.ID, internalerr.ErrInvalidInput)
			}
		}
	}
	return nil
}

// Model returns the export as a value implementing the capability of its kind.
func (e *Export) Model() (any, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	kind, _ := diversity.ParseKind(e.Kind)
	switch kind {
	case diversity.KindNMF:
		rows, cols := len(e.Components), len(e.Components[0])
		data := make([]float64, 0, rows*cols)
		for _, row := range e.Components {
			data = append(data, row...)
		}
		return Matrix{mat.NewDense(rows, cols, data)}, nil
	case diversity.KindTop2Vec:
		phrases := make(Phrases, len(e.Topics))
		for i, t := range e.Topics {
			phrases[i] = t.Phrases
		}
		return phrases, nil
	default:
		topics := make(WordTopics, len(e.Topics))
		for i, t := range e.Topics {
			topics[i] = diversity.Topic{ID: t.ID, Words: t.Words}
		}
		return topics, nil
	}
}

// WordTopics is an in-memory topic table. It serves lda, lsa and bertopic.
type WordTopics []diversity.Topic

// ShowTopics returns every topic truncated to numWords words.
func (w WordTopics) ShowTopics(numWords int) []diversity.Topic {
	out := make([]diversity.Topic, len(w))
	for i, t := range w {
		words := ranked(t.Words)
		if len(words) > numWords {
			words = words[:numWords]
		}
		out[i] = diversity.Topic{ID: t.ID, Words: words}
	}
	return out
}

// TopicIDs returns the topic ids in table order.
func (w WordTopics) TopicIDs() []int {
	ids := make([]int, len(w))
	for i, t := range w {
		ids[i] = t.ID
	}
	return ids
}

// Topic returns the words of the topic with the given id, strongest first.
func (w WordTopics) Topic(id int) []diversity.WeightedWord {
	for _, t := range w {
		if t.ID != id {
			continue
		}
		return ranked(t.Words)
	}
	return nil
}

// ranked copies words ordered by descending weight; equal weights keep their
// exported order.
func ranked(words []diversity.WeightedWord) []diversity.WeightedWord {
	out := append([]diversity.WeightedWord(nil), words...)
	sort.SliceStable(out, func(a, b int) bool { return out[a].Weight > out[b].Weight })
	return out
}

// Phrases is a top2vec topic-word structure.
type Phrases [][]string

// TopicWords implements diversity.PhraseModel.
func (p Phrases) TopicWords() [][]string { return p }

// Matrix is a topic x term weight matrix.
type Matrix struct {
	*mat.Dense
}

// Components implements diversity.ComponentModel.
func (m Matrix) Components() mat.Matrix { return m.Dense }
