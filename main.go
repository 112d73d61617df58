package main

import (
	"log"

	"empinsight/adapters/tabular"
	"empinsight/app"
	"empinsight/domain/core"
	"empinsight/internal"
	"empinsight/internal/config"
	"empinsight/ports"
	"empinsight/ui"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load environment variables from .env file
	if !config.LoadDotEnv() {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewLogger(appConfig.LogLevel)
	gin.SetMode(appConfig.Server.GinMode)

	var source ports.RecordSource = tabular.NewReader(
		appConfig.Data.File,
		tabular.WithSheet(appConfig.Data.Sheet),
		tabular.WithLogger(logger),
	)

	store, err := source.Load()
	switch {
	case core.IsNotFoundError(err):
		log.Fatalf("Data file %s not found. Set DATA_FILE or run `empinsight-cli generate --out %s`.", appConfig.Data.File, appConfig.Data.File)
	case core.IsMalformedError(err):
		log.Fatalf("Data file %s could not be read: %v", appConfig.Data.File, err)
	case err != nil:
		log.Fatalf("Failed to load records: %v", err)
	}
	logger.Info("loaded %d records from %s", store.Len(), store.Source())

	service := app.NewDashboardService(store,
		app.WithLogger(logger),
		app.WithTrendPoints(appConfig.Analytics.TrendPoints),
		app.WithWorkers(appConfig.Analytics.MatrixWorkers),
	)

	server := ui.NewServer(service, logger)

	log.Printf("Starting empinsight server on port %s", appConfig.Server.Port)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
