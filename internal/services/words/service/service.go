// Package service contains word workflows
package service

import (
	"context"
	"strings"

	"shuardict/internal/core/langdetect"
	"shuardict/internal/core/phonology"
	perr "shuardict/internal/platform/errors"
	"shuardict/internal/platform/store"
	"shuardict/internal/services/words/domain"
	"shuardict/internal/services/words/repo"
)

// Service defines the words service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the words service
type Svc struct {
	Repo   repo.Repo
	binder store.Binder[repo.Repo]
	db     store.TxRunner
}

// New constructs a words service
func New(db store.TxRunner, binder store.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("words.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("words.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Create analyzes the headword and stores it. The Shuar text must actually
// classify as Shuar; phonology is always derived server side.
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Word, error) {
	shuar := phonology.Fold(in.ShuarText)

	det, err := langdetect.Detect(shuar)
	if err != nil {
		return domain.Word{}, err
	}
	if det.Language != langdetect.Shuar && det.Tier == langdetect.TierHigh {
		return domain.Word{}, perr.Validationf("shuar_text classifies as %s: %s", det.Language, det.Explanation)
	}

	info, err := phonology.NewInfo(shuar)
	if err != nil {
		return domain.Word{}, err
	}

	w := domain.Word{
		ShuarText:       shuar,
		SpanishText:     strings.TrimSpace(in.SpanishText),
		Phonology:       &info,
		Morphology:      in.Morphology,
		ConfidenceLevel: in.ConfidenceLevel,
	}
	return s.Repo.Insert(ctx, w)
}

// Get returns a word by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Word, error) {
	return s.Repo.Get(ctx, id)
}

// GetByText returns a word by its exact Shuar text
func (s *Svc) GetByText(ctx context.Context, shuarText string) (domain.Word, error) {
	if strings.TrimSpace(shuarText) == "" {
		return domain.Word{}, perr.Validationf("shuar text cannot be empty")
	}
	return s.Repo.GetByText(ctx, shuarText)
}

// List returns words matching the filter
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Word, error) {
	return s.Repo.List(ctx, in)
}

// Update applies the provided fields and returns the updated word
func (s *Svc) Update(ctx context.Context, id string, in domain.UpdateInput) (domain.Word, error) {
	w, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.Word{}, err
	}
	if in.SpanishText != nil {
		w.SpanishText = strings.TrimSpace(*in.SpanishText)
	}
	if in.Morphology != nil {
		w.Morphology = in.Morphology
	}
	if in.ConfidenceLevel != nil {
		w.ConfidenceLevel = *in.ConfidenceLevel
	}
	return s.Repo.Update(ctx, w)
}

// Verify marks a word as reviewed by a speaker or expert
func (s *Svc) Verify(ctx context.Context, id string) (domain.Word, error) {
	w, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.Word{}, err
	}
	if w.IsVerified {
		return w, nil
	}
	w.IsVerified = true
	return s.Repo.Update(ctx, w)
}

// Delete removes a word
func (s *Svc) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
