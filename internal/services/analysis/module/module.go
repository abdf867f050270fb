// Package module wires the analysis vertical together
package module

import (
	phttp "shuardict/internal/platform/net/http"
	"shuardict/internal/platform/store"
	analysishttp "shuardict/internal/services/analysis/http"
	analysisrepo "shuardict/internal/services/analysis/repo"
	analysissvc "shuardict/internal/services/analysis/service"
)

// Module owns the analysis service and its routes
type Module struct {
	svc analysissvc.Service
}

// New constructs the analysis module
func New(db store.TxRunner) *Module {
	return &Module{svc: analysissvc.New(db, analysisrepo.NewPG())}
}

// Service exposes the analysis service to sibling modules
func (m *Module) Service() analysissvc.Service { return m.svc }

// MountRoutes mounts the module routes under /analysis
func (m *Module) MountRoutes(r phttp.Router) {
	r.Route("/analysis", func(rr phttp.Router) {
		analysishttp.Register(rr, m.svc)
	})
}
