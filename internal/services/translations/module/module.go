// Package module wires the translations vertical together
package module

import (
	"context"

	phttp "shuardict/internal/platform/net/http"
	"shuardict/internal/platform/store"
	analysisdomain "shuardict/internal/services/analysis/domain"
	analysissvc "shuardict/internal/services/analysis/service"
	translationsdomain "shuardict/internal/services/translations/domain"
	translationshttp "shuardict/internal/services/translations/http"
	translationsrepo "shuardict/internal/services/translations/repo"
	translationssvc "shuardict/internal/services/translations/service"
	wordsdomain "shuardict/internal/services/words/domain"
	wordssvc "shuardict/internal/services/words/service"
)

// Module owns the translations service and its routes
type Module struct {
	svc translationssvc.Service
}

// New constructs the translations module against the words and analysis services
func New(db store.TxRunner, words wordssvc.Service, analysis analysissvc.Service) *Module {
	reader := wordReader{words: words}
	finder := similarFinder{analysis: analysis}
	return &Module{svc: translationssvc.New(db, translationsrepo.NewPG(), reader, finder)}
}

// Service exposes the translations service to sibling modules
func (m *Module) Service() translationssvc.Service { return m.svc }

// MountRoutes mounts the module routes under /translations
func (m *Module) MountRoutes(r phttp.Router) {
	r.Route("/translations", func(rr phttp.Router) {
		translationshttp.Register(rr, m.svc)
	})
}

type wordReader struct{ words wordssvc.Service }

func (w wordReader) ShuarText(ctx context.Context, wordID string) (string, error) {
	word, err := w.words.Get(ctx, wordID)
	if err != nil {
		return "", err
	}
	return word.ShuarText, nil
}

func (w wordReader) ByShuarText(ctx context.Context, text string) (translationssvc.WordRef, error) {
	word, err := w.words.GetByText(ctx, text)
	if err != nil {
		return translationssvc.WordRef{}, err
	}
	return toRef(word), nil
}

func (w wordReader) SearchSpanish(ctx context.Context, query string, limit int) ([]translationssvc.WordRef, error) {
	words, err := w.words.List(ctx, wordsdomain.ListInput{Query: query, Limit: limit})
	if err != nil {
		return nil, err
	}
	refs := make([]translationssvc.WordRef, 0, len(words))
	for _, word := range words {
		refs = append(refs, toRef(word))
	}
	return refs, nil
}

func toRef(word wordsdomain.Word) translationssvc.WordRef {
	return translationssvc.WordRef{
		ID:          word.ID,
		ShuarText:   word.ShuarText,
		SpanishText: word.SpanishText,
		Confidence:  word.ConfidenceLevel,
		Phonology:   word.Phonology,
	}
}

type similarFinder struct{ analysis analysissvc.Service }

func (f similarFinder) Similar(
	ctx context.Context, word string, max int,
) ([]translationsdomain.SimilarSuggestion, error) {
	hits, err := f.analysis.Similar(ctx, analysisdomain.SimilarInput{Word: word, MaxResults: max})
	if err != nil {
		return nil, err
	}
	out := make([]translationsdomain.SimilarSuggestion, 0, len(hits))
	for _, h := range hits {
		out = append(out, translationsdomain.SimilarSuggestion{
			ShuarText:   h.ShuarText,
			SpanishText: h.SpanishText,
			Similarity:  h.Score.Overall,
			Explanation: h.Explanation,
		})
	}
	return out, nil
}
