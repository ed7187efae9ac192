package diversity

import "gonum.org/v1/gonum/mat"

// OutlierTopicID marks documents a clustering model left unassigned.
const OutlierTopicID = -1

// WeightedWord is one entry of a topic's word distribution.
type WeightedWord struct {
	Word   string  `json:"word" yaml:"word"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Topic is an ordered list of a topic's strongest words.
type Topic struct {
	ID    int
	Words []WeightedWord
}

// TopicLister is implemented by LDA and LSA models. ShowTopics returns every
// topic with at most numWords words, strongest first.
type TopicLister interface {
	ShowTopics(numWords int) []Topic
}

// ComponentModel is implemented by NMF models: one row per topic, one column
// per vocabulary term.
type ComponentModel interface {
	Components() mat.Matrix
}

// PhraseModel is implemented by Top2Vec models. Each topic is an ordered list
// of words or multi-word phrases.
type PhraseModel interface {
	TopicWords() [][]string
}

// TopicTable is implemented by BERTopic models.
type TopicTable interface {
	TopicIDs() []int
	Topic(id int) []WeightedWord
}
