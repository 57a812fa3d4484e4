package importer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/l3montree-dev/appcatalog/monitoring"
	"github.com/l3montree-dev/appcatalog/shared"
	"github.com/l3montree-dev/appcatalog/utils"
	"github.com/schollz/progressbar/v3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Mode string

const (
	// ModeSkip leaves apps whose id already exists untouched. Re-running an import is a no-op.
	ModeSkip Mode = "skip"
	// ModeAlways inserts unconditionally. An existing app id aborts the batch with a constraint error.
	ModeAlways Mode = "always"
)

const (
	DefaultBatchSize = 1000
	// one app row binds 24 parameters, postgres allows 65535 per statement
	MaxBatchSize = 2500
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSkip, ModeAlways:
		return Mode(s), nil
	case "":
		return ModeSkip, nil
	}
	return "", fmt.Errorf("unknown import mode %q, expected %q or %q", s, ModeSkip, ModeAlways)
}

type Options struct {
	Mode      Mode
	BatchSize int
	DryRun    bool
	// ShowProgress renders a progress bar on stderr
	ShowProgress bool
}

type Summary struct {
	RowsRead      int           `json:"rows_read" yaml:"rows_read"`
	Duplicates    int           `json:"duplicates" yaml:"duplicates"`
	Rejected      int           `json:"rejected" yaml:"rejected"`
	Developers    int           `json:"developers" yaml:"developers"`
	Categories    int           `json:"categories" yaml:"categories"`
	AppsInserted  int64         `json:"apps_inserted" yaml:"apps_inserted"`
	AppsSkipped   int64         `json:"apps_skipped" yaml:"apps_skipped"`
	CategoryLinks int           `json:"category_links" yaml:"category_links"`
	DryRun        bool          `json:"dry_run" yaml:"dry_run"`
	Duration      time.Duration `json:"duration" yaml:"duration"`
}

type Importer struct {
	appRepository       shared.AppRepository
	developerRepository shared.DeveloperRepository
	categoryRepository  shared.CategoryRepository
}

func NewImporter(appRepository shared.AppRepository, developerRepository shared.DeveloperRepository, categoryRepository shared.CategoryRepository) *Importer {
	return &Importer{
		appRepository:       appRepository,
		developerRepository: developerRepository,
		categoryRepository:  categoryRepository,
	}
}

// Load writes the normalized rows. Developers and categories are resolved by name first,
// then the apps and their category links are inserted batch by batch, one transaction per batch.
func (i *Importer) Load(ctx context.Context, normalized Normalized, opts Options) (Summary, error) {
	start := time.Now()
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	opts.BatchSize = min(opts.BatchSize, MaxBatchSize)
	if opts.Mode == "" {
		opts.Mode = ModeSkip
	}

	ctx, span := monitoring.Tracer().Start(ctx, "importer.Load", trace.WithAttributes(
		attribute.Int("rows", len(normalized.Rows)),
		attribute.String("mode", string(opts.Mode)),
		attribute.Bool("dryRun", opts.DryRun),
	))
	defer span.End()

	developers := developersOf(normalized.Rows)
	categories := categoriesOf(normalized.Rows)

	summary := Summary{
		RowsRead:   normalized.Total,
		Duplicates: normalized.Duplicates,
		Rejected:   len(normalized.Rejected),
		Developers: len(developers),
		Categories: len(categories),
		DryRun:     opts.DryRun,
	}
	monitoring.ImportRowsTotal.WithLabelValues("duplicate").Add(float64(summary.Duplicates))
	monitoring.ImportRowsTotal.WithLabelValues("rejected").Add(float64(summary.Rejected))

	if opts.DryRun {
		summary.CategoryLinks = countLinks(normalized.Rows)
		summary.Duration = time.Since(start)
		return summary, nil
	}

	developerIDs, categoryIDs, err := i.resolveNames(ctx, developers, categories)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not resolve developers and categories")
		return summary, err
	}

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		bar = progressbar.Default(int64(len(normalized.Rows)), "importing apps")
	} else {
		bar = progressbar.DefaultSilent(int64(len(normalized.Rows)))
	}

	for n, batch := range utils.Chunk(normalized.Rows, opts.BatchSize) {
		inserted, links, err := i.loadBatch(ctx, batch, developerIDs, categoryIDs, opts.Mode)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "batch failed")
			return summary, fmt.Errorf("could not import batch %d (csv line %d): %w", n+1, batch[0].Line, err)
		}
		summary.AppsInserted += inserted
		summary.AppsSkipped += int64(len(batch)) - inserted
		summary.CategoryLinks += links

		monitoring.ImportRowsTotal.WithLabelValues("imported").Add(float64(inserted))
		monitoring.ImportRowsTotal.WithLabelValues("skipped").Add(float64(int64(len(batch)) - inserted))
		_ = bar.Add(len(batch))
	}
	_ = bar.Finish()

	summary.Duration = time.Since(start)
	monitoring.ImportDuration.Observe(summary.Duration.Minutes())
	slog.Info("import finished",
		"inserted", summary.AppsInserted,
		"skipped", summary.AppsSkipped,
		"rejected", summary.Rejected,
		"duplicates", summary.Duplicates,
		"duration", summary.Duration,
	)
	return summary, nil
}

func (i *Importer) resolveNames(ctx context.Context, developers []models.Developer, categories []string) (map[string]int64, map[string]int64, error) {
	ctx, span := monitoring.Tracer().Start(ctx, "importer.resolveNames")
	defer span.End()

	developerIDs := make(map[string]int64, len(developers))
	categoryIDs := make(map[string]int64, len(categories))

	err := i.appRepository.Transaction(ctx, func(tx shared.DB) error {
		ensuredDevelopers, err := i.developerRepository.EnsureByNames(ctx, tx, developers)
		if err != nil {
			return fmt.Errorf("could not ensure developers: %w", err)
		}
		for _, d := range ensuredDevelopers {
			developerIDs[d.DeveloperName] = d.DeveloperID
		}

		ensuredCategories, err := i.categoryRepository.EnsureByNames(ctx, tx, categories)
		if err != nil {
			return fmt.Errorf("could not ensure categories: %w", err)
		}
		for _, c := range ensuredCategories {
			categoryIDs[c.CategoryName] = c.CategoryID
		}
		return nil
	})
	return developerIDs, categoryIDs, err
}

func (i *Importer) loadBatch(ctx context.Context, batch []Row, developerIDs, categoryIDs map[string]int64, mode Mode) (int64, int, error) {
	ctx, span := monitoring.Tracer().Start(ctx, "importer.loadBatch", trace.WithAttributes(attribute.Int("size", len(batch))))
	defer span.End()

	apps := make([]models.App, 0, len(batch))
	links := make([]models.AppCategory, 0, len(batch))
	for _, row := range batch {
		app := row.App
		if id, ok := developerIDs[row.DeveloperName]; ok {
			app.DeveloperID = utils.Ptr(id)
		}
		apps = append(apps, app)

		for _, name := range row.Categories {
			if id, ok := categoryIDs[name]; ok {
				links = append(links, models.AppCategory{AppID: app.AppID, CategoryID: id})
			}
		}
	}

	var inserted int64
	err := i.appRepository.Transaction(ctx, func(tx shared.DB) error {
		var err error
		inserted, err = i.appRepository.CreateBatch(ctx, tx, apps, mode == ModeSkip)
		if err != nil {
			return err
		}
		return i.appRepository.LinkCategories(ctx, tx, links)
	})
	if err != nil {
		return 0, 0, err
	}
	return inserted, len(links), nil
}

// developersOf returns one developer per name, the first occurrence wins
func developersOf(rows []Row) []models.Developer {
	developers := utils.Map(rows, func(r Row) models.Developer {
		return models.Developer{
			DeveloperName:    r.DeveloperName,
			DeveloperWebsite: utils.EmptyThenNil(r.DeveloperWebsite),
			DeveloperEmail:   utils.EmptyThenNil(r.DeveloperEmail),
		}
	})
	return utils.UniqBy(developers, func(d models.Developer) string { return d.DeveloperName })
}

func categoriesOf(rows []Row) []string {
	names := utils.Reduce(rows, func(acc []string, r Row) []string {
		return append(acc, r.Categories...)
	}, []string{})
	return utils.UniqBy(names, func(n string) string { return n })
}

func countLinks(rows []Row) int {
	return utils.Reduce(rows, func(acc int, r Row) int { return acc + len(r.Categories) }, 0)
}
