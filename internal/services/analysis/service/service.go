// Package service exposes the linguistic engine as workflows
package service

import (
	"context"

	"shuardict/internal/core/langdetect"
	"shuardict/internal/core/phonology"
	"shuardict/internal/core/similarity"
	"shuardict/internal/platform/store"
	"shuardict/internal/services/analysis/domain"
	"shuardict/internal/services/analysis/repo"
)

// Service defines the analysis service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the analysis service
type Svc struct {
	Repo   repo.Repo
	binder store.Binder[repo.Repo]
	db     store.TxRunner
}

// New constructs an analysis service
func New(db store.TxRunner, binder store.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("analysis.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("analysis.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Analyze returns the full phonological report for one word
func (s *Svc) Analyze(ctx context.Context, in domain.AnalyzeInput) (domain.Analysis, error) {
	f, err := phonology.Analyze(in.Word)
	if err != nil {
		return domain.Analysis{}, err
	}
	return domain.Analysis{
		Word:              phonology.Fold(in.Word),
		IPA:               phonology.Transcribe(in.Word),
		SyllableCount:     f.SyllableCount,
		SyllablePattern:   f.SyllablePattern,
		VocalTypes:        phonology.SortedTypes(f.VocalTypes),
		Digraphs:          f.Digraphs,
		ConsonantClusters: f.ConsonantClusters,
		Complexity:        f.Complexity,
	}, nil
}

// Detect classifies text as Shuar or Spanish
func (s *Svc) Detect(ctx context.Context, in domain.DetectInput) (domain.DetectResult, error) {
	return langdetect.Detect(in.Text)
}

// Compare returns the pairwise phonological similarity of two words
func (s *Svc) Compare(ctx context.Context, in domain.CompareInput) (domain.CompareResult, error) {
	return domain.CompareResult{
		Word1:      phonology.Fold(in.Word1),
		Word2:      phonology.Fold(in.Word2),
		Similarity: phonology.Similarity(in.Word1, in.Word2),
	}, nil
}

// Similar ranks dictionary words against the target
func (s *Svc) Similar(ctx context.Context, in domain.SimilarInput) ([]domain.SimilarWord, error) {
	candidates, err := s.Repo.Candidates(ctx, 0)
	if err != nil {
		return nil, err
	}

	criteria := similarity.DefaultCriteria()
	if in.MinSimilarity > 0 {
		criteria.MinSimilarity = in.MinSimilarity
	}
	if in.MaxResults > 0 {
		criteria.MaxResults = in.MaxResults
	}
	if in.IncludeMorphological != nil {
		criteria.IncludeMorphological = *in.IncludeMorphological
	}

	words := make([]similarity.Word, 0, len(candidates))
	spanish := make(map[string]string, len(candidates))
	for _, c := range candidates {
		words = append(words, c.Word)
		spanish[c.Text] = c.SpanishText
	}

	matches, err := similarity.FindSimilar(in.Word, words, criteria)
	if err != nil {
		return nil, err
	}

	out := make([]domain.SimilarWord, 0, len(matches))
	for _, m := range matches {
		out = append(out, domain.SimilarWord{
			ShuarText:   m.Word.Text,
			SpanishText: spanish[m.Word.Text],
			Score:       m.Score,
			Explanation: m.Explanation,
		})
	}
	return out, nil
}

// Rhymes lists dictionary words rhyming with the target
func (s *Svc) Rhymes(ctx context.Context, in domain.RhymesInput) ([]string, error) {
	candidates, err := s.Repo.Candidates(ctx, 0)
	if err != nil {
		return nil, err
	}
	words := make([]similarity.Word, 0, len(candidates))
	for _, c := range candidates {
		words = append(words, c.Word)
	}

	minMatch := in.MinSyllablesMatch
	if minMatch <= 0 {
		minMatch = 1
	}
	rhymes, err := similarity.FindRhyming(in.Word, words, minMatch)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(rhymes))
	for _, w := range rhymes {
		out = append(out, w.Text)
	}
	return out, nil
}

// MinimalPairs lists stored word pairs separated by few features
func (s *Svc) MinimalPairs(ctx context.Context, in domain.MinimalPairsInput) ([]domain.MinimalPair, error) {
	candidates, err := s.Repo.Candidates(ctx, in.Limit)
	if err != nil {
		return nil, err
	}
	words := make([]similarity.Word, 0, len(candidates))
	for _, c := range candidates {
		words = append(words, c.Word)
	}

	maxDiff := in.MaxDifferences
	if maxDiff <= 0 {
		maxDiff = 1
	}
	pairs := similarity.FindMinimalPairs(words, maxDiff)

	out := make([]domain.MinimalPair, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, domain.MinimalPair{A: p.A.Text, B: p.B.Text})
	}
	return out, nil
}

// Groups buckets stored words by phonological pattern
func (s *Svc) Groups(ctx context.Context, in domain.GroupsInput) (map[string][]string, error) {
	candidates, err := s.Repo.Candidates(ctx, in.Limit)
	if err != nil {
		return nil, err
	}
	words := make([]similarity.Word, 0, len(candidates))
	for _, c := range candidates {
		words = append(words, c.Word)
	}

	groups := similarity.GroupByPattern(words)
	out := make(map[string][]string, len(groups))
	for key, members := range groups {
		texts := make([]string, 0, len(members))
		for _, w := range members {
			texts = append(texts, w.Text)
		}
		out[key] = texts
	}
	return out, nil
}
