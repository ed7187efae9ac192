package diversity

// Result is the outcome of scoring one model.
type Result struct {
	Kind   Kind
	TopN   int
	Words  []string
	Unique int
	Total  int
	Score  float64
}

// Evaluate extracts the word bag of model and computes its topic diversity.
// kind is matched case-insensitively against the supported tags; vocabulary
// is required for NMF and ignored otherwise.
//
// Errors wrap internalerr.ErrUnsupportedModelKind for an unknown kind and
// internalerr.ErrInvalidArgument for a missing NMF vocabulary, a model that
// lacks the capability of its kind, or a vocabulary index out of range. A
// non-positive topN is also rejected with ErrInvalidArgument rather than
// scoring an empty bag as 0.
func Evaluate(model any, topN int, kind string, vocabulary []string) (Result, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return Result{}, err
	}
	words, err := Extract(model, topN, k, vocabulary)
	if err != nil {
		return Result{}, err
	}
	unique := uniqueCount(words)
	return Result{
		Kind:   k,
		TopN:   topN,
		Words:  words,
		Unique: unique,
		Total:  len(words),
		Score:  ratio(unique, len(words)),
	}, nil
}

// Score returns the topic diversity of model: the share of distinct words
// among the top topN words of all its topics. It fails exactly as Evaluate
// does, including for a non-positive topN.
func Score(model any, topN int, kind string, vocabulary []string) (float64, error) {
	res, err := Evaluate(model, topN, kind, vocabulary)
	if err != nil {
		return 0, err
	}
	return res.Score, nil
}

// Diversity is the unique/total ratio of a word bag, 0 when it is empty.
func Diversity(words []string) float64 {
	return ratio(uniqueCount(words), len(words))
}

func uniqueCount(words []string) int {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}
	return len(seen)
}

func ratio(unique, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(unique) / float64(total)
}
