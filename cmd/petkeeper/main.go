package main

import (
	"fmt"

	"github.com/avidalm/petkeeper/internal/client"
	"github.com/avidalm/petkeeper/internal/config"
	"github.com/avidalm/petkeeper/internal/logger"
	"github.com/avidalm/petkeeper/internal/service"
	"github.com/avidalm/petkeeper/internal/store"
	"github.com/avidalm/petkeeper/internal/tui"
	"github.com/avidalm/petkeeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("petkeeper")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storage")
	}

	services := service.NewServices(storages, cfg.Auth, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(services, buildInfo, log)

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = app.Run(); err != nil {
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
