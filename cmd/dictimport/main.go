// Command dictimport builds the Swedish/English dictionary from the two
// Folkets lexikon XML dumps: it merges the sv-en and en-sv directions,
// lemmatizes every entry and replaces the stored dictionary.
// It is intended to be run offline, not as part of the main server.
//
// Flags:
//
//	--config      path to import YAML config file
//	--sv-en       path to the sv-en dump (overrides config)
//	--en-sv       path to the en-sv dump (overrides config)
//	--lemmatizer  lemmatizer backend: golem or snowball (overrides config)
//	--dry-run     parse, merge and lemmatize without writing to the store
//	--version     print the build version and exit
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/svenska-backend/internal/app"
	"github.com/heartmarshall/svenska-backend/internal/app/importer"
	"github.com/heartmarshall/svenska-backend/internal/config"
	"github.com/heartmarshall/svenska-backend/internal/lemma"
)

func main() {
	configFlag := flag.String("config", "", "path to import YAML config file")
	svEnFlag := flag.String("sv-en", "", "path to the sv-en dictionary XML")
	enSvFlag := flag.String("en-sv", "", "path to the en-sv dictionary XML")
	lemmatizerFlag := flag.String("lemmatizer", "", "lemmatizer backend: golem or snowball")
	dryRunFlag := flag.Bool("dry-run", false, "parse and merge without writing to the store")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(app.BuildVersion())
		return
	}

	// Load app config (store selection and logging).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	importCfg, err := importer.LoadConfig(*configFlag)
	if err != nil {
		logger.Error("load import config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *svEnFlag != "" {
		importCfg.SvEnPath = *svEnFlag
	}
	if *enSvFlag != "" {
		importCfg.EnSvPath = *enSvFlag
	}
	if *lemmatizerFlag != "" {
		importCfg.Lemmatizer = *lemmatizerFlag
	}
	if *dryRunFlag {
		importCfg.DryRun = true
	}

	if err := importCfg.Validate(); err != nil {
		logger.Error("invalid import config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("starting import",
		slog.String("version", app.BuildVersion()),
		slog.String("store", appCfg.Store.Driver),
		slog.String("lemmatizer", importCfg.Lemmatizer),
		slog.Bool("dry_run", importCfg.DryRun),
	)

	if err := run(logger, appCfg, *importCfg); err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import completed successfully")
}

func run(logger *slog.Logger, appCfg *config.Config, importCfg importer.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), importCfg.Timeout)
	defer cancel()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	lem, err := lemma.Load(importCfg.Lemmatizer)
	if err != nil {
		return fmt.Errorf("load lemmatizer: %w", err)
	}

	store, closeStore, err := app.OpenStore(ctx, appCfg, importCfg.BatchSize)
	if err != nil {
		return err
	}
	defer closeStore()

	pipeline := importer.NewPipeline(logger, store, lem, importCfg)
	return pipeline.Run(ctx)
}
