package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"

	"registration-sheets-be/internal/bootstrap"
	"registration-sheets-be/internal/config"
	"registration-sheets-be/pkg/database"

	"github.com/fatih/color"
)

// One-shot generation run from the command line, no HTTP server involved.
// Usage: generate -opportunity <id>
func main() {
	opportunityFlag := flag.Int64("opportunity", 0, "parent opportunity id")
	flag.Parse()

	opportunityId := *opportunityFlag
	if opportunityId == 0 && flag.NArg() > 0 {
		parsed, err := strconv.ParseInt(flag.Arg(0), 10, 64)
		if err != nil {
			log.Fatalf("invalid opportunity id: %v", err)
		}
		opportunityId = parsed
	}
	if opportunityId <= 0 {
		color.Red("Usage: generate -opportunity <id>")
		os.Exit(1)
	}

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Renderer.Close()
	if container.NatsPublisher != nil {
		defer container.NatsPublisher.Close()
	}

	ctx := context.Background()
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Printf("Consumer Error: %v", err)
	}

	color.Cyan("🚀 Generating registration sheets for opportunity %d\n", opportunityId)

	result, err := container.SheetService.GenerateSheets(ctx, opportunityId)
	if err != nil {
		color.Red("Run failed: %v", err)
		os.Exit(1)
	}

	color.Green("Run %s finished", result.RunId)
	for _, sheet := range result.Generated {
		color.Green("  ✓ %s -> %s", sheet.RegistrationNumber, sheet.OutputPath)
	}
	for _, failed := range result.Failed {
		color.Red("  ✗ %s: %s", failed.RegistrationNumber, failed.Reason)
	}

	if len(result.Failed) > 0 {
		color.Yellow("%d generated, %d failed", len(result.Generated), len(result.Failed))
		os.Exit(1)
	}
	color.Cyan("%d generated", len(result.Generated))
}
