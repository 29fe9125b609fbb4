package importer

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/svenska-backend/internal/app/importer/folkets"
	"github.com/heartmarshall/svenska-backend/internal/domain"
	"github.com/heartmarshall/svenska-backend/internal/lemma"
)

// Phase names in execution order.
const (
	PhaseSvEn      = "sv-en"
	PhaseEnSv      = "en-sv"
	PhaseLemmatize = "lemmatize"
	PhaseWrite     = "write"
)

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Records  int
	Created  int
	Merged   int
	Skipped  int
	Written  domain.SaveResult
	Duration time.Duration
}

// Pipeline runs the import: primary pass, supplemental pass, lemmatization
// and the final write. Any phase error aborts the run.
type Pipeline struct {
	log     *slog.Logger
	writer  DictionaryWriter
	lem     *lemma.Lemmatizer
	cfg     Config
	store   *MergeStore
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, writer DictionaryWriter, lem *lemma.Lemmatizer, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		writer:  writer,
		lem:     lem,
		cfg:     cfg,
		store:   NewMergeStore(),
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// Entries returns the merged entries of the last run.
func (p *Pipeline) Entries() []domain.DictionaryEntry {
	return p.store.Entries()
}

// Run executes every phase in order on a fresh merge store.
func (p *Pipeline) Run(ctx context.Context) error {
	p.store = NewMergeStore()
	p.results = make(map[string]PhaseResult)

	phases := []struct {
		name string
		run  func(context.Context) (PhaseResult, error)
	}{
		{PhaseSvEn, func(ctx context.Context) (PhaseResult, error) {
			return p.runPass(ctx, p.cfg.SvEnPath, folkets.SvEn, p.store.ApplyPrimary)
		}},
		{PhaseEnSv, func(ctx context.Context) (PhaseResult, error) {
			return p.runPass(ctx, p.cfg.EnSvPath, folkets.EnSv, p.store.ApplySupplement)
		}},
		{PhaseLemmatize, p.runLemmatize},
		{PhaseWrite, p.runWrite},
	}

	for _, ph := range phases {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", ph.name))

		result, err := ph.run(ctx)
		result.Duration = time.Since(start)
		p.results[ph.name] = result

		if err != nil {
			p.log.Error("phase failed",
				slog.String("phase", ph.name),
				slog.String("error", err.Error()),
				slog.Duration("duration", result.Duration),
			)
			return fmt.Errorf("%s: %w", ph.name, err)
		}

		p.log.Info("phase completed",
			slog.String("phase", ph.name),
			slog.Int("records", result.Records),
			slog.Int("created", result.Created),
			slog.Int("merged", result.Merged),
			slog.Int("skipped", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}

	stats := p.store.Stats()
	p.log.Info("pipeline completed",
		slog.Int("entries", p.store.Len()),
		slog.Int("fields_filled", stats.FieldsFilled),
		slog.Int("examples", stats.ExamplesAdded),
		slog.Int("idioms", stats.IdiomsAdded),
		slog.Int("duplicates_skipped", stats.DuplicatesSkipped),
		slog.Int("blank_keys_skipped", stats.BlankKeysSkipped),
		slog.Bool("dry_run", p.cfg.DryRun),
	)
	return nil
}

// runPass streams one document into the merge store.
func (p *Pipeline) runPass(ctx context.Context, path string, dir folkets.Direction, apply func(folkets.Record)) (PhaseResult, error) {
	if path == "" {
		return PhaseResult{}, fmt.Errorf("%s path not configured", dir)
	}

	f, err := os.Open(path)
	if err != nil {
		return PhaseResult{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	before := p.store.Stats()
	r := folkets.NewReader(bufio.NewReader(f), dir)

	for rec, err := range r.Records() {
		if err != nil {
			return PhaseResult{}, err
		}
		if err := ctx.Err(); err != nil {
			return PhaseResult{}, err
		}
		apply(rec)
	}

	st := r.Stats()
	after := p.store.Stats()

	for field, n := range st.SkippedByField {
		p.log.Debug("skipped incomplete records",
			slog.String("direction", dir.String()),
			slog.String("missing", field),
			slog.Int("count", n),
		)
	}

	return PhaseResult{
		Records: st.Yielded,
		Created: after.Created - before.Created,
		Merged:  after.Merged - before.Merged,
		Skipped: st.Skipped(),
	}, nil
}

func (p *Pipeline) runLemmatize(ctx context.Context) (PhaseResult, error) {
	entries := p.store.Entries()
	if err := LemmatizeEntries(ctx, p.lem, entries, p.cfg.Workers); err != nil {
		return PhaseResult{}, err
	}
	return PhaseResult{Records: len(entries)}, nil
}

// runWrite replaces the stored dictionary with the merged entries.
func (p *Pipeline) runWrite(ctx context.Context) (PhaseResult, error) {
	entries := p.store.Entries()

	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(entries)}, nil
	}

	if err := p.writer.ResetSchema(ctx); err != nil {
		return PhaseResult{}, fmt.Errorf("%w: reset schema: %w", domain.ErrPersistence, err)
	}

	saved, err := p.writer.SaveEntries(ctx, entries)
	if err != nil {
		return PhaseResult{}, fmt.Errorf("%w: save entries: %w", domain.ErrPersistence, err)
	}

	p.log.Info("dictionary written",
		slog.Int("entries", saved.Entries),
		slog.Int("examples", saved.Examples),
		slog.Int("idioms", saved.Idioms),
	)
	return PhaseResult{Records: saved.Entries, Written: saved}, nil
}
