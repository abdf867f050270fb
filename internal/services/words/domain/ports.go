package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Word, error)
	Get(ctx context.Context, id string) (Word, error)
	GetByText(ctx context.Context, shuarText string) (Word, error)
	List(ctx context.Context, in ListInput) ([]Word, error)
	Update(ctx context.Context, id string, in UpdateInput) (Word, error)
	Verify(ctx context.Context, id string) (Word, error)
	Delete(ctx context.Context, id string) error
}
