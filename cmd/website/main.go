package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/telsite/modules/website"
	"github.com/dmitrymomot/telsite/pkg/config"
	"github.com/dmitrymomot/telsite/pkg/content"
	"github.com/dmitrymomot/telsite/pkg/environment"
	"github.com/dmitrymomot/telsite/pkg/httpserver"
	"github.com/dmitrymomot/telsite/pkg/logger"
	"github.com/dmitrymomot/telsite/pkg/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var siteCfg website.Config
	config.MustLoad(&siteCfg)

	log := logger.New(
		logger.WithEnvironment(environment.Parse(siteCfg.AppEnv), siteCfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	var contentCfg content.Config
	if err := config.Load(&contentCfg); err != nil {
		log.Error("Failed to load content config", logger.Component("content"), logger.Error(err))
		os.Exit(1)
	}
	var httpCfg httpserver.Config
	if err := config.Load(&httpCfg); err != nil {
		log.Error("Failed to load http config", logger.Component("http"), logger.Error(err))
		os.Exit(1)
	}

	source, err := content.NewSource(ctx, contentCfg, website.Content())
	if err != nil {
		log.Error("Failed to set up content source", logger.Component("content"), logger.Error(err))
		os.Exit(1)
	}

	svc, err := website.NewService(ctx, siteCfg, source, log)
	if err != nil {
		log.Error("Failed to set up website", logger.Component("website"), logger.Error(err))
		os.Exit(1)
	}

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log.With(logger.Component("http"))))
	if err := srv.Run(ctx, svc.Handle()); err != nil {
		log.Error("Server stopped with error", logger.Component("http"), logger.Error(err))
		os.Exit(1)
	}
}
