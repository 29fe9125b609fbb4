// Package importer merges the two Folkets lexikon directions into one
// lemmatized dictionary and hands it to a store.
package importer

import (
	"context"

	"github.com/heartmarshall/svenska-backend/internal/domain"
)

// DictionaryWriter defines the store contract consumed by the import pipeline.
// All methods use only domain types, no adapter imports.
// Implemented by the postgres and sqlite dictionary repos.
type DictionaryWriter interface {
	// ResetSchema drops every dictionary table and recreates the schema.
	ResetSchema(ctx context.Context) error
	// SaveEntries writes entries with their examples and idioms in a single
	// transaction. Nothing is written if any insert fails.
	SaveEntries(ctx context.Context, entries []domain.DictionaryEntry) (domain.SaveResult, error)
}
