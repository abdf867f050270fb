package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Feedback, error)
	List(ctx context.Context, in ListInput) ([]Feedback, error)
	Delete(ctx context.Context, id string) error
}
