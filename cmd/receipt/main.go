package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"movie-rental-billing/internal/catalog"
	"movie-rental-billing/internal/config"
	"movie-rental-billing/internal/logger"
	"movie-rental-billing/internal/service"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("%v", err)
	}
}

// run prints one receipt per customer to stdout. Logs go to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	// Parse command-line flags
	flags := flag.NewFlagSet("receipt", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "Path to configuration file (empty uses the built-in scenario)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	// Load configuration
	cfg, err := config.Resolve(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger.InitializeWithWriter(stderr, cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting movie rental billing...", "log_level", cfg.Log.Level, "config", *configPath)

	customers, err := catalog.Build(cfg.Catalog)
	if err != nil {
		logger.Error("Failed to build catalog", "error", err)
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	billingSvc := service.NewBillingService()
	for _, customer := range customers {
		if _, err := fmt.Fprintln(stdout, billingSvc.RenderReceipt(customer)); err != nil {
			return fmt.Errorf("failed to write receipt: %w", err)
		}
	}

	logger.Info("Billing completed", "customers", len(customers))
	return nil
}
