package diversity

import (
	"fmt"
	"reflect"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/cognicore/topicdiv/pkg/topicdiv/internalerr"
)

// extractFunc turns a model into the flat bag of its topics' top words.
type extractFunc func(model any, topN int, vocabulary []string) ([]string, error)

var extractors = map[Kind]extractFunc{
	KindLDA:      extractListed,
	KindLSA:      extractListed,
	KindNMF:      extractComponents,
	KindTop2Vec:  extractPhrases,
	KindBERTopic: extractTable,
}

func init() {
	for _, k := range Kinds() {
		if _, ok := extractors[k]; !ok {
			panic(fmt.Sprintf("diversity: no extractor registered for %s", k))
		}
	}
}

// Extract returns the word bag of a model: the top topN words of every topic,
// concatenated in topic order. Duplicates are kept.
func Extract(model any, topN int, kind Kind, vocabulary []string) ([]string, error) {
	extract, ok := extractors[kind]
	if !ok {
		return nil, fmt.Errorf("%s: %w", kind, internalerr.ErrUnsupportedModelKind)
	}
	if kind == KindNMF && vocabulary == nil {
		return nil, fmt.Errorf("nmf requires a vocabulary: %w", internalerr.ErrInvalidArgument)
	}
	if topN <= 0 {
		return nil, fmt.Errorf("topN must be positive, got %d: %w", topN, internalerr.ErrInvalidArgument)
	}
	if isNil(model) {
		return nil, fmt.Errorf("nil %s model: %w", kind, internalerr.ErrInvalidArgument)
	}
	return extract(model, topN, vocabulary)
}

// isNil reports whether v is nil or holds a nil pointer. Nil slices and maps
// are valid empty models.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func capabilityError(kind string, model any) error {
	return fmt.Errorf("%T does not implement %s: %w", model, kind, internalerr.ErrInvalidArgument)
}

func extractListed(model any, topN int, _ []string) ([]string, error) {
	lister, ok := model.(TopicLister)
	if !ok {
		return nil, capabilityError("TopicLister", model)
	}
	var words []string
	for _, topic := range lister.ShowTopics(topN) {
		for _, w := range head(topic.Words, topN) {
			words = append(words, w.Word)
		}
	}
	return words, nil
}

func extractComponents(model any, topN int, vocabulary []string) ([]string, error) {
	cm, ok := model.(ComponentModel)
	if !ok {
		return nil, capabilityError("ComponentModel", model)
	}
	components := cm.Components()
	if isNil(components) {
		return nil, nil
	}

	rows, _ := components.Dims()
	var words []string
	for r := 0; r < rows; r++ {
		for _, i := range TopIndices(mat.Row(nil, r, components), topN) {
			if i >= len(vocabulary) {
				return nil, fmt.Errorf("topic %d: term index %d outside vocabulary of %d: %w",
					r, i, len(vocabulary), internalerr.ErrInvalidArgument)
			}
			words = append(words, vocabulary[i])
		}
	}
	return words, nil
}

func extractPhrases(model any, topN int, _ []string) ([]string, error) {
	pm, ok := model.(PhraseModel)
	if !ok {
		return nil, capabilityError("PhraseModel", model)
	}
	var words []string
	for _, topic := range pm.TopicWords() {
		for _, phrase := range head(topic, topN) {
			words = append(words, strings.Fields(phrase)...)
		}
	}
	return words, nil
}

func extractTable(model any, topN int, _ []string) ([]string, error) {
	table, ok := model.(TopicTable)
	if !ok {
		return nil, capabilityError("TopicTable", model)
	}
	var words []string
	for _, id := range table.TopicIDs() {
		if id == OutlierTopicID {
			continue
		}
		for _, w := range head(table.Topic(id), topN) {
			words = append(words, w.Word)
		}
	}
	return words, nil
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
