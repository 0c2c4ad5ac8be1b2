package main

import (
	"context"
	"log"
	"os"
	"runtime/debug"

	"github.com/peopledesk/peopledesk/internal/server"
	"github.com/peopledesk/peopledesk/modules"
	hrmservices "github.com/peopledesk/peopledesk/modules/hrm/services"
	"github.com/peopledesk/peopledesk/pkg/application"
	"github.com/peopledesk/peopledesk/pkg/authz"
	"github.com/peopledesk/peopledesk/pkg/configuration"
	"github.com/peopledesk/peopledesk/pkg/eventbus"
	"github.com/peopledesk/peopledesk/pkg/metrics"
	"github.com/peopledesk/peopledesk/pkg/session"
	"github.com/peopledesk/peopledesk/pkg/transport"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println("Application recovered from panic:", r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	sessions := session.NewProvider(conf.SessionPath, logger)
	sessions.Load()

	table := authz.DefaultCapabilities()
	if conf.Authz.CapabilityPath != "" {
		loaded, err := authz.LoadCapabilities(conf.Authz.CapabilityPath)
		if err != nil {
			log.Fatalf("failed to load capability table: %v", err)
		}
		table = loaded
	}
	authzSvc, err := authz.NewService(table)
	if err != nil {
		log.Fatalf("failed to initialize authorization: %v", err)
	}

	app := application.New(&application.Options{
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
		Session:  sessions,
		Authz:    authzSvc,
		API:      transport.NewClient(conf.API.BaseURL, conf.API.Timeout, logger),
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}
	app.RegisterNavItems(modules.NavLinks...)
	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	poller := application.Use[*hrmservices.AttendancePoller](app)
	if err := poller.Start(ctx); err != nil {
		log.Fatalf("failed to start attendance poller: %v", err)
	}
	defer poller.Stop()

	serverInstance, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
	})
	if err != nil {
		log.Fatalf("failed to initialize server: %v", err)
	}
	logger.WithField("address", conf.SocketAddress).Info("listening")
	if err := serverInstance.Start(conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
