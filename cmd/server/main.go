package main

import (
	"context"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuskit/campuskit/internal/server"
	"github.com/campuskit/campuskit/modules"
	"github.com/campuskit/campuskit/pkg/application"
	"github.com/campuskit/campuskit/pkg/configuration"
	"github.com/campuskit/campuskit/pkg/eventbus"
	"github.com/campuskit/campuskit/pkg/metrics"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		panic(err)
	}

	app := application.New(&application.ApplicationOptions{
		Pool:     pool,
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}

	if err := app.Migrations().Up(context.Background()); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	serverInstance, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
		Pool:          pool,
	})
	if err != nil {
		log.Fatalf("failed to initialize server: %v", err)
	}

	logger.WithField("address", conf.SocketAddress).Info("starting server")
	if err := serverInstance.Start(conf.SocketAddress, conf.ShutdownTimeout); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
