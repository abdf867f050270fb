// Package http provides http transport for translations
package http

import (
	stdhttp "net/http"

	phttp "shuardict/internal/platform/net/http"
	"shuardict/internal/services/translations/domain"
	svc "shuardict/internal/services/translations/service"
)

// Register mounts translation endpoints on the given router
func Register(r phttp.Router, s svc.Service) {
	h := &handlers{svc: s}

	phttp.PostJSON[domain.CreateInput](r, "/", h.create)
	phttp.PostJSON[domain.TranslateInput](r, "/translate", h.translate)
	phttp.PostJSON[domain.ListInput](r, "/search", h.list)
	phttp.GetJSON(r, "/{id}", h.get)
	phttp.PostJSON[domain.RateInput](r, "/{id}/rate", h.rate)
	phttp.PostJSON[domain.ApproveInput](r, "/{id}/approve", h.approve)
	r.Post("/{id}/usage", phttp.JSONHandlerNoBody(h.recordUsage))
	phttp.GetJSON(r, "/{id}/quality", h.quality)
	r.Delete("/{id}", phttp.Handle(h.del))
}

type handlers struct{ svc svc.Service }

func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

func (h *handlers) translate(r *stdhttp.Request, in domain.TranslateInput) (any, error) {
	return h.svc.Translate(r.Context(), in)
}

func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := phttp.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id)
}

func (h *handlers) rate(r *stdhttp.Request, in domain.RateInput) (any, error) {
	id, err := phttp.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Rate(r.Context(), id, in)
}

func (h *handlers) approve(r *stdhttp.Request, in domain.ApproveInput) (any, error) {
	id, err := phttp.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Approve(r.Context(), id, in)
}

func (h *handlers) recordUsage(r *stdhttp.Request) (any, error) {
	id, err := phttp.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.RecordUsage(r.Context(), id)
}

func (h *handlers) quality(r *stdhttp.Request) (any, error) {
	id, err := phttp.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Quality(r.Context(), id)
}

func (h *handlers) del(r *stdhttp.Request) phttp.Response {
	id, err := phttp.UUIDParam(r, "id")
	if err != nil {
		return phttp.Error(err)
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		return phttp.Error(err)
	}
	return phttp.NoContent()
}
