// Command dictlookup prints the stored dictionary entries for a Swedish word
// as indented JSON.
//
// Flags:
//
//	--word  Swedish word to look up (case-insensitive)
//
// Exit codes: 0 = found, 1 = error, 2 = no entry for the word.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/svenska-backend/internal/app"
	"github.com/heartmarshall/svenska-backend/internal/app/lookup"
	"github.com/heartmarshall/svenska-backend/internal/config"
	"github.com/heartmarshall/svenska-backend/internal/domain"
)

func main() {
	wordFlag := flag.String("word", "", "Swedish word to look up")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	os.Exit(run(logger, appCfg, *wordFlag))
}

func run(logger *slog.Logger, appCfg *config.Config, word string) int {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, closeStore, err := app.OpenStore(ctx, appCfg, 0)
	if err != nil {
		logger.Error("open store", slog.String("error", err.Error()))
		return 1
	}
	defer closeStore()

	entries, err := lookup.NewService(store).Lookup(ctx, word)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		logger.Warn("no entry", slog.String("word", word))
		return 2
	case err != nil:
		logger.Error("lookup failed", slog.String("error", err.Error()))
		return 1
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		logger.Error("encode entries", slog.String("error", err.Error()))
		return 1
	}
	return 0
}
