package main

import (
	"context"

	"shuardict/internal/platform/config"
	"shuardict/internal/platform/logger"
	phttp "shuardict/internal/platform/net/http"
	"shuardict/internal/platform/store"

	"shuardict/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (DICT_API_*)
	root := config.New()
	apiCfg := root.Prefix("DICT_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	// bring up logging early
	l := logger.Get()

	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "shuardict-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads DICT_API_PORT / DICT_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	api.Mount(srv.Router(), api.Options{
		Config: apiCfg,
		Store:  st,
		Logger: l,
	})

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
