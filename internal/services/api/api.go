// Package api assembles the HTTP API for the dictionary service
package api

import (
	"net/http"

	"shuardict/internal/core/version"
	"shuardict/internal/platform/config"
	"shuardict/internal/platform/logger"
	phttp "shuardict/internal/platform/net/http"
	"shuardict/internal/platform/net/middleware"
	"shuardict/internal/platform/store"

	analysismod "shuardict/internal/services/analysis/module"
	feedbackmod "shuardict/internal/services/feedback/module"
	translationsmod "shuardict/internal/services/translations/module"
	wordsmod "shuardict/internal/services/words/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger
}

// Mountable is a vertical that can register its routes
type Mountable interface {
	MountRoutes(r phttp.Router)
}

// Mount assembles the verticals and mounts everything under /v1
func Mount(r phttp.Router, opt Options) {
	r.Use(middleware.Defaults()...)
	r.Use(middleware.CORS(middleware.CORSOptions{
		AllowedOrigins: []string{opt.Config.MayString("CORS_ORIGIN", "*")},
	}))
	r.Use(middleware.Heartbeat("/healthz"))

	phttp.GetJSON(r, "/version", func(*http.Request) (any, error) {
		return version.Info(), nil
	})

	words := wordsmod.New(opt.Store.PG)
	analysis := analysismod.New(opt.Store.PG)
	translations := translationsmod.New(opt.Store.PG, words.Service(), analysis.Service())
	feedback := feedbackmod.New(opt.Store.PG, translations.Service())

	mods := []Mountable{words, translations, feedback, analysis}

	r.Route("/v1", func(v1 phttp.Router) {
		for _, m := range mods {
			m.MountRoutes(v1)
		}
	})
}
