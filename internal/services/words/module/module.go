// Package module wires the words vertical together
package module

import (
	phttp "shuardict/internal/platform/net/http"
	"shuardict/internal/platform/store"
	wordshttp "shuardict/internal/services/words/http"
	wordsrepo "shuardict/internal/services/words/repo"
	wordssvc "shuardict/internal/services/words/service"
)

// Module owns the words service and its routes
type Module struct {
	svc wordssvc.Service
}

// New constructs the words module
func New(db store.TxRunner) *Module {
	return &Module{svc: wordssvc.New(db, wordsrepo.NewPG())}
}

// Service exposes the words service to sibling modules
func (m *Module) Service() wordssvc.Service { return m.svc }

// MountRoutes mounts the module routes under /words
func (m *Module) MountRoutes(r phttp.Router) {
	r.Route("/words", func(rr phttp.Router) {
		wordshttp.Register(rr, m.svc)
	})
}
