// Package http provides http transport for the analysis endpoints
package http

import (
	stdhttp "net/http"

	phttp "shuardict/internal/platform/net/http"
	"shuardict/internal/services/analysis/domain"
	svc "shuardict/internal/services/analysis/service"
)

// Register mounts analysis endpoints on the given router
func Register(r phttp.Router, s svc.Service) {
	h := &handlers{svc: s}

	phttp.PostJSON[domain.AnalyzeInput](r, "/phonology", h.analyze)
	phttp.PostJSON[domain.DetectInput](r, "/detect", h.detect)
	phttp.PostJSON[domain.CompareInput](r, "/compare", h.compare)
	phttp.PostJSON[domain.SimilarInput](r, "/similar", h.similar)
	phttp.PostJSON[domain.RhymesInput](r, "/rhymes", h.rhymes)
	phttp.PostJSON[domain.MinimalPairsInput](r, "/minimal-pairs", h.minimalPairs)
	phttp.PostJSON[domain.GroupsInput](r, "/groups", h.groups)
}

type handlers struct{ svc svc.Service }

func (h *handlers) analyze(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.svc.Analyze(r.Context(), in)
}

func (h *handlers) detect(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	return h.svc.Detect(r.Context(), in)
}

func (h *handlers) compare(r *stdhttp.Request, in domain.CompareInput) (any, error) {
	return h.svc.Compare(r.Context(), in)
}

func (h *handlers) similar(r *stdhttp.Request, in domain.SimilarInput) (any, error) {
	return h.svc.Similar(r.Context(), in)
}

func (h *handlers) rhymes(r *stdhttp.Request, in domain.RhymesInput) (any, error) {
	return h.svc.Rhymes(r.Context(), in)
}

func (h *handlers) minimalPairs(r *stdhttp.Request, in domain.MinimalPairsInput) (any, error) {
	return h.svc.MinimalPairs(r.Context(), in)
}

func (h *handlers) groups(r *stdhttp.Request, in domain.GroupsInput) (any, error) {
	return h.svc.Groups(r.Context(), in)
}
