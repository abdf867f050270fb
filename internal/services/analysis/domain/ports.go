package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Analyze(ctx context.Context, in AnalyzeInput) (Analysis, error)
	Detect(ctx context.Context, in DetectInput) (DetectResult, error)
	Compare(ctx context.Context, in CompareInput) (CompareResult, error)
	Similar(ctx context.Context, in SimilarInput) ([]SimilarWord, error)
	Rhymes(ctx context.Context, in RhymesInput) ([]string, error)
	MinimalPairs(ctx context.Context, in MinimalPairsInput) ([]MinimalPair, error)
	Groups(ctx context.Context, in GroupsInput) (map[string][]string, error)
}
