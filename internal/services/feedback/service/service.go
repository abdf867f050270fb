// Package service contains feedback workflows
package service

import (
	"context"
	"strings"

	"shuardict/internal/core/scoring"
	perr "shuardict/internal/platform/errors"
	"shuardict/internal/platform/store"
	"shuardict/internal/services/feedback/domain"
	"shuardict/internal/services/feedback/repo"
	transdomain "shuardict/internal/services/translations/domain"
)

// Service defines the feedback service contract
type Service interface {
	domain.ServicePort
}

// Rater folds a new rating into a translation's counters
type Rater interface {
	Rate(ctx context.Context, id string, in transdomain.RateInput) (transdomain.Translation, error)
}

// Svc implements the feedback service
type Svc struct {
	Repo   repo.Repo
	binder store.Binder[repo.Repo]
	db     store.TxRunner
	rater  Rater
}

// New constructs a feedback service
func New(db store.TxRunner, binder store.Binder[repo.Repo], rater Rater) *Svc {
	if db == nil {
		panic("feedback.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("feedback.Service requires a non nil Repo binder")
	}
	if rater == nil {
		panic("feedback.Service requires a non nil Rater")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, rater: rater}
}

// Create records feedback; a carried rating also updates the
// translation's running average
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Feedback, error) {
	if in.Rating == nil &&
		strings.TrimSpace(in.Comment) == "" &&
		strings.TrimSpace(in.CulturalContext) == "" &&
		strings.TrimSpace(in.SuggestedTranslation) == "" {
		return domain.Feedback{}, perr.Validationf("feedback must carry a rating or some text")
	}

	f := domain.Feedback{
		TranslationID:        in.TranslationID,
		Rating:               in.Rating,
		Role:                 scoring.Role(in.Role),
		NativeSpeaker:        in.NativeSpeaker,
		Comment:              strings.TrimSpace(in.Comment),
		CulturalContext:      strings.TrimSpace(in.CulturalContext),
		SuggestedTranslation: strings.TrimSpace(in.SuggestedTranslation),
	}
	out, err := s.Repo.Insert(ctx, f)
	if err != nil {
		return domain.Feedback{}, err
	}

	if in.Rating != nil {
		if _, err := s.rater.Rate(ctx, in.TranslationID, transdomain.RateInput{Rating: *in.Rating}); err != nil {
			return domain.Feedback{}, err
		}
	}
	return out, nil
}

// List returns feedback for a translation, oldest first
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Feedback, error) {
	return s.Repo.List(ctx, in)
}

// Delete removes a feedback item
func (s *Svc) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
