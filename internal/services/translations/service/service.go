// Package service contains translation workflows
package service

import (
	"context"
	"sort"
	"strings"

	"shuardict/internal/core/langdetect"
	"shuardict/internal/core/phonology"
	"shuardict/internal/core/scoring"
	perr "shuardict/internal/platform/errors"
	"shuardict/internal/platform/store"
	"shuardict/internal/services/translations/domain"
	"shuardict/internal/services/translations/repo"
)

// Service defines the translations service contract
type Service interface {
	domain.ServicePort
}

// WordRef is the slice of a word this service needs for lookups
type WordRef struct {
	ID          string
	ShuarText   string
	SpanishText string
	Confidence  float64
	Phonology   *phonology.Info
}

// WordReader resolves words for translation lookups
type WordReader interface {
	ShuarText(ctx context.Context, wordID string) (string, error)
	ByShuarText(ctx context.Context, text string) (WordRef, error)
	SearchSpanish(ctx context.Context, query string, limit int) ([]WordRef, error)
}

// SimilarFinder ranks dictionary headwords against a target
type SimilarFinder interface {
	Similar(ctx context.Context, word string, max int) ([]domain.SimilarSuggestion, error)
}

// Svc implements the translations service
type Svc struct {
	Repo    repo.Repo
	binder  store.Binder[repo.Repo]
	db      store.TxRunner
	words   WordReader
	similar SimilarFinder
}

// New constructs a translations service
func New(db store.TxRunner, binder store.Binder[repo.Repo], words WordReader, similar SimilarFinder) *Svc {
	if db == nil {
		panic("translations.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("translations.Service requires a non nil Repo binder")
	}
	if words == nil {
		panic("translations.Service requires a non nil WordReader")
	}
	if similar == nil {
		panic("translations.Service requires a non nil SimilarFinder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, words: words, similar: similar}
}

// Create stores a new pending translation with the word's Shuar text
// captured as source
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Translation, error) {
	source, err := s.words.ShuarText(ctx, in.WordID)
	if err != nil {
		return domain.Translation{}, err
	}
	t := domain.Translation{
		WordID:        in.WordID,
		SourceText:    source,
		TargetText:    strings.TrimSpace(in.TargetText),
		Status:        scoring.StatusPending,
		CulturalNotes: strings.TrimSpace(in.CulturalNotes),
	}
	return s.Repo.Insert(ctx, t)
}

// Suggestions kick in below this best-hit confidence
const fuzzyFallbackBelow = 0.9

// Translate detects the input language, tries an exact headword lookup,
// and falls back to similar-word suggestions. Served exact hits count as
// usage.
func (s *Svc) Translate(ctx context.Context, in domain.TranslateInput) (domain.TranslateResult, error) {
	det, err := langdetect.Detect(in.Text)
	if err != nil {
		return domain.TranslateResult{}, err
	}
	folded := phonology.Fold(in.Text)

	out := domain.TranslateResult{
		OriginalText:     in.Text,
		DetectedLanguage: det.Language,
		DetectionScore:   det.Confidence,
	}
	maxSimilar := in.MaxSimilarWords
	if maxSimilar <= 0 {
		maxSimilar = 5
	}

	if det.Language != langdetect.Shuar {
		refs, err := s.words.SearchSpanish(ctx, folded, 20)
		if err != nil {
			return domain.TranslateResult{}, err
		}
		for _, ref := range refs {
			if !strings.EqualFold(ref.SpanishText, folded) {
				continue
			}
			out.Translations = append(out.Translations, domain.TranslationHit{
				Text:       ref.ShuarText,
				Confidence: ref.Confidence,
			})
		}
		out.Found = len(out.Translations) > 0
		return out, nil
	}

	ref, err := s.words.ByShuarText(ctx, folded)
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		sims, serr := s.similar.Similar(ctx, folded, maxSimilar)
		if serr != nil {
			return domain.TranslateResult{}, serr
		}
		out.SimilarWords = sims
		return out, nil
	}
	if err != nil {
		return domain.TranslateResult{}, err
	}

	list, err := s.Repo.List(ctx, domain.ListInput{WordID: ref.ID})
	if err != nil {
		return domain.TranslateResult{}, err
	}

	var best float64
	err = store.WithTx(ctx, s.db, func(q store.RowQuerier) error {
		r := s.binder.Bind(q)
		for _, t := range list {
			if t.Status != scoring.StatusApproved && t.Status != scoring.StatusPending {
				continue
			}
			conf := scoring.Confidence(scoring.Translation{
				SourceText:       t.SourceText,
				TargetText:       t.TargetText,
				Status:           t.Status,
				UsageCount:       t.UsageCount,
				AverageRating:    t.AverageRating,
				TotalRatings:     t.TotalRatings,
				ExpertApproved:   t.ApprovedBy != nil,
				HasCulturalNotes: t.CulturalNotes != "",
			}, nil, nil)
			if conf > best {
				best = conf
			}
			out.Translations = append(out.Translations, domain.TranslationHit{
				Text:          t.TargetText,
				Confidence:    conf,
				UsageCount:    t.UsageCount,
				AverageRating: t.AverageRating,
			})
			t.UsageCount++
			if _, err := r.Update(ctx, t); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.TranslateResult{}, err
	}

	sort.SliceStable(out.Translations, func(i, j int) bool {
		return out.Translations[i].Confidence > out.Translations[j].Confidence
	})
	out.Found = len(out.Translations) > 0
	out.Phonetics = ref.Phonology

	if best < fuzzyFallbackBelow {
		sims, serr := s.similar.Similar(ctx, folded, maxSimilar)
		if serr != nil {
			return domain.TranslateResult{}, serr
		}
		out.SimilarWords = sims
	}
	return out, nil
}

// Get returns a translation by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Translation, error) {
	return s.Repo.Get(ctx, id)
}

// List returns translations for a word, best rated first
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Translation, error) {
	return s.Repo.List(ctx, in)
}

// Rate folds one rating into the running average inside a transaction
func (s *Svc) Rate(ctx context.Context, id string, in domain.RateInput) (domain.Translation, error) {
	var out domain.Translation
	err := store.WithTx(ctx, s.db, func(q store.RowQuerier) error {
		r := s.binder.Bind(q)
		t, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		total := t.TotalRatings + 1
		t.AverageRating = (t.AverageRating*float64(t.TotalRatings) + float64(in.Rating)) / float64(total)
		t.TotalRatings = total
		out, err = r.Update(ctx, t)
		return err
	})
	return out, err
}

// Approve records expert approval and moves the translation to approved
func (s *Svc) Approve(ctx context.Context, id string, in domain.ApproveInput) (domain.Translation, error) {
	t, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.Translation{}, err
	}
	if t.Status == scoring.StatusRejected {
		return domain.Translation{}, perr.InvalidArgf("rejected translation cannot be approved")
	}
	t.Status = scoring.StatusApproved
	t.ApprovedBy = &in.ApproverID
	return s.Repo.Update(ctx, t)
}

// RecordUsage bumps the usage counter
func (s *Svc) RecordUsage(ctx context.Context, id string) (domain.Translation, error) {
	var out domain.Translation
	err := store.WithTx(ctx, s.db, func(q store.RowQuerier) error {
		r := s.binder.Bind(q)
		t, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		t.UsageCount++
		out, err = r.Update(ctx, t)
		return err
	})
	return out, err
}

// Quality scores the translation from its stored signals plus feedback
// and the source word
func (s *Svc) Quality(ctx context.Context, id string) (domain.QualityReport, error) {
	t, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.QualityReport{}, err
	}
	feedback, err := s.Repo.FeedbackFor(ctx, id)
	if err != nil {
		return domain.QualityReport{}, err
	}

	var word *scoring.Word
	if w, err := s.Repo.SourceWord(ctx, t.WordID); err == nil {
		word = &w
	} else if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		return domain.QualityReport{}, err
	}

	st := scoring.Translation{
		SourceText:       t.SourceText,
		TargetText:       t.TargetText,
		Status:           t.Status,
		UsageCount:       t.UsageCount,
		AverageRating:    t.AverageRating,
		TotalRatings:     t.TotalRatings,
		ExpertApproved:   t.ApprovedBy != nil,
		HasCulturalNotes: t.CulturalNotes != "",
	}
	metrics := scoring.QualityMetrics(st, feedback, word)

	return domain.QualityReport{
		TranslationID:   t.ID,
		Metrics:         metrics,
		Recommendations: scoring.RecommendImprovements(metrics, feedback),
	}, nil
}

// Delete removes a translation
func (s *Svc) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
