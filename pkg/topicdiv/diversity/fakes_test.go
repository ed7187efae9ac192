package diversity

import "gonum.org/v1/gonum/mat"

type listerModel struct {
	topics [][]string
}

func (m listerModel) ShowTopics(numWords int) []Topic {
	out := make([]Topic, len(m.topics))
	for i, words := range m.topics {
		t := Topic{ID: i}
		for j, w := range head(words, numWords) {
			t.Words = append(t.Words, WeightedWord{Word: w, Weight: 1 / float64(j+1)})
		}
		out[i] = t
	}
	return out
}

// greedyLister ignores numWords, like a model that always returns its full list.
type greedyLister struct {
	listerModel
}

func (m greedyLister) ShowTopics(int) []Topic {
	return m.listerModel.ShowTopics(1 << 20)
}

type componentModel struct {
	m *mat.Dense
}

func (c componentModel) Components() mat.Matrix { return c.m }

type phraseModel [][]string

func (p phraseModel) TopicWords() [][]string { return p }

type tableModel struct {
	ids    []int
	topics map[int][]string
}

func (t tableModel) TopicIDs() []int { return t.ids }

func (t tableModel) Topic(id int) []WeightedWord {
	var out []WeightedWord
	for _, w := range t.topics[id] {
		out = append(out, WeightedWord{Word: w, Weight: 0.1})
	}
	return out
}
