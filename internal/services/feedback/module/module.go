// Package module wires the feedback vertical together
package module

import (
	phttp "shuardict/internal/platform/net/http"
	"shuardict/internal/platform/store"
	feedbackhttp "shuardict/internal/services/feedback/http"
	feedbackrepo "shuardict/internal/services/feedback/repo"
	feedbacksvc "shuardict/internal/services/feedback/service"
	translationssvc "shuardict/internal/services/translations/service"
)

// Module owns the feedback service and its routes
type Module struct {
	svc feedbacksvc.Service
}

// New constructs the feedback module against the translations service
func New(db store.TxRunner, translations translationssvc.Service) *Module {
	return &Module{svc: feedbacksvc.New(db, feedbackrepo.NewPG(), translations)}
}

// Service exposes the feedback service to sibling modules
func (m *Module) Service() feedbacksvc.Service { return m.svc }

// MountRoutes mounts the module routes under /feedback
func (m *Module) MountRoutes(r phttp.Router) {
	r.Route("/feedback", func(rr phttp.Router) {
		feedbackhttp.Register(rr, m.svc)
	})
}
