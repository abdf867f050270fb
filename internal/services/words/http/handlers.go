// Package http provides http transport for words
package http

import (
	stdhttp "net/http"

	phttp "shuardict/internal/platform/net/http"
	"shuardict/internal/services/words/domain"
	svc "shuardict/internal/services/words/service"
)

// Register mounts word endpoints on the given router
func Register(r phttp.Router, s svc.Service) {
	h := &handlers{svc: s}

	phttp.PostJSON[domain.CreateInput](r, "/", h.create)
	phttp.PostJSON[domain.ListInput](r, "/search", h.list)
	phttp.GetJSON(r, "/{id}", h.get)
	phttp.GetJSON(r, "/by-text/{text}", h.getByText)
	phttp.PutJSON[domain.UpdateInput](r, "/{id}", h.update)
	r.Post("/{id}/verify", phttp.JSONHandlerNoBody(h.verify))
	r.Delete("/{id}", phttp.Handle(h.del))
}

type handlers struct{ svc svc.Service }

func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
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

func (h *handlers) getByText(r *stdhttp.Request) (any, error) {
	return h.svc.GetByText(r.Context(), phttp.Param(r, "text"))
}

func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	id, err := phttp.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Update(r.Context(), id, in)
}

func (h *handlers) verify(r *stdhttp.Request) (any, error) {
	id, err := phttp.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Verify(r.Context(), id)
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
