package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Translation, error)
	Translate(ctx context.Context, in TranslateInput) (TranslateResult, error)
	Get(ctx context.Context, id string) (Translation, error)
	List(ctx context.Context, in ListInput) ([]Translation, error)
	Rate(ctx context.Context, id string, in RateInput) (Translation, error)
	Approve(ctx context.Context, id string, in ApproveInput) (Translation, error)
	RecordUsage(ctx context.Context, id string) (Translation, error)
	Quality(ctx context.Context, id string) (QualityReport, error)
	Delete(ctx context.Context, id string) error
}
