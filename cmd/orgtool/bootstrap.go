package main

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuskit/campuskit/modules"
	"github.com/campuskit/campuskit/pkg/application"
	"github.com/campuskit/campuskit/pkg/configuration"
	"github.com/campuskit/campuskit/pkg/eventbus"
)

func bootstrap(ctx context.Context) (application.Application, *pgxpool.Pool, error) {
	conf := configuration.Use()

	connectCtx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()
	pool, err := pgxpool.New(connectCtx, conf.Database.Opts)
	if err != nil {
		return nil, nil, err
	}

	app := application.New(&application.ApplicationOptions{
		Pool:     pool,
		EventBus: eventbus.NewEventPublisher(conf.Logger()),
		Logger:   conf.Logger(),
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return app, pool, nil
}
