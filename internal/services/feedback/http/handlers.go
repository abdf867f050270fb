// Package http provides http transport for feedback
package http

import (
	stdhttp "net/http"

	phttp "shuardict/internal/platform/net/http"
	"shuardict/internal/services/feedback/domain"
	svc "shuardict/internal/services/feedback/service"
)

// Register mounts feedback endpoints on the given router
func Register(r phttp.Router, s svc.Service) {
	h := &handlers{svc: s}

	phttp.PostJSON[domain.CreateInput](r, "/", h.create)
	phttp.PostJSON[domain.ListInput](r, "/search", h.list)
	r.Delete("/{id}", phttp.Handle(h.del))
}

type handlers struct{ svc svc.Service }

func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
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
