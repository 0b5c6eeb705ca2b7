package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/esawctha/esawctha/internal/config"
	"github.com/esawctha/esawctha/internal/geo"
	"github.com/esawctha/esawctha/internal/logger"
	"github.com/esawctha/esawctha/internal/service"
	"github.com/esawctha/esawctha/internal/store"
	"github.com/esawctha/esawctha/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("esawctha")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	if n, err := storages.UserRepository.Count(context.Background()); err == nil {
		log.Info().Int64("registered_users", n).Msg("local storage ready")
	}

	locator := geo.NewHTTPLocator(cfg.Geo, log)
	services := service.NewServices(storages, locator, cfg.App, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	if err = ui.Run(context.Background()); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Fatal().Err(err).Msg("app run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
