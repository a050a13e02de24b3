// Package pipeline provides the high-level orchestration for the campaign
// planning process: generate, filter, group, assemble, export.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vvaibhav/sem-planner/internal/campaign"
	"github.com/vvaibhav/sem-planner/internal/config"
	"github.com/vvaibhav/sem-planner/internal/db"
	"github.com/vvaibhav/sem-planner/internal/export"
	"github.com/vvaibhav/sem-planner/internal/filtering"
	"github.com/vvaibhav/sem-planner/internal/grouping"
	"github.com/vvaibhav/sem-planner/internal/observability"
	"github.com/vvaibhav/sem-planner/internal/scoring"
	"github.com/vvaibhav/sem-planner/internal/source"
	"github.com/vvaibhav/sem-planner/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Config     *config.Config
	OutputDir  string // overrides Config.Output.Directory when set
	Verbose    bool
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// Result holds everything a pipeline run produced.
type Result struct {
	Campaign      *types.Campaign
	Report        *filtering.Report
	RawCount      int
	EmptyResult   bool
	ExportedFiles []string
	RunID         uuid.UUID
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			Content: content,
		})
	}
}

// Run orchestrates the full campaign planning pipeline
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("pipeline requires a configuration")
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	printer := observability.NewPrinter(os.Stdout)

	// Initialize database connection if configured
	var database *db.DB
	var runID uuid.UUID
	if cfg.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
			database = nil
		} else {
			defer database.Close()
			if opts.Verbose {
				logger.Info("connected to database")
			}
		}
	}

	if database != nil {
		var err error
		runID, err = database.CreateRun(ctx, cfg.Brand.Name, cfg.Competitor.Name)
		if err != nil {
			fmt.Printf("Warning: Failed to create database run: %v\n", err)
			runID = uuid.Nil
		}
	}

	// Step 1: Generate keyword candidates
	logger.Info("generating keyword candidates",
		zap.String("brand", cfg.Brand.Name),
		zap.Int("seeds", len(cfg.SeedKeywords)))
	gen := source.NewGenerator(cfg.Brand.Name, cfg.Competitor.Name, cfg.SeedKeywords, cfg.ServiceLocations)
	candidates := gen.Generate()
	emitProgress(&opts, db.StepCandidates,
		fmt.Sprintf("Generated %d keyword candidates", len(candidates)), nil)
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepCandidates, types.CandidateSet{Candidates: candidates})
	}

	// Step 2: Filter candidates
	logger.Info("filtering candidates", zap.Int("input", len(candidates)))
	filter, err := filtering.New(cfg.FilterRules(), scoring.NewTokenOverlapScorer())
	if err != nil {
		return nil, fmt.Errorf("building filter failed: %w", err)
	}
	kept, report, err := filter.Apply(ctx, candidates)
	if err != nil {
		failRun(ctx, database, runID)
		return nil, fmt.Errorf("filtering candidates failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintFilterReport(report)
	}
	emitProgress(&opts, db.StepFilterReport,
		fmt.Sprintf("Kept %d of %d candidates", report.Output, report.Input), report)
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepFilterReport, report)
	}

	// Step 3: Group into ad groups, PMax themes, and shopping recommendations
	logger.Info("grouping keywords", zap.Int("keywords", len(kept)))
	grouped, err := grouping.Group(kept, cfg.GroupingConfig())
	if err != nil {
		failRun(ctx, database, runID)
		return nil, fmt.Errorf("grouping keywords failed: %w", err)
	}

	// Step 4: Assemble the campaign
	plan := campaign.Assemble(grouped.AdGroups, grouped.PMaxThemes, grouped.ShoppingRecommendations,
		campaign.Meta{Summary: cfg.Summary()})
	if opts.Verbose {
		printer.PrintCampaign(plan)
	}
	emitProgress(&opts, db.StepCampaign,
		fmt.Sprintf("Assembled campaign with %d ad groups", len(plan.AdGroups)), plan)
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepCampaign, plan)
	}

	// Step 5: Export deliverables
	outputDir := cfg.Output.Directory
	if opts.OutputDir != "" {
		outputDir = opts.OutputDir
	}
	exported, err := exportCampaign(plan, outputDir, cfg.Output.Formats)
	if err != nil {
		failRun(ctx, database, runID)
		return nil, fmt.Errorf("exporting campaign failed: %w", err)
	}
	logger.Info("exported campaign", zap.Strings("files", exported))

	if database != nil && runID != uuid.Nil {
		_ = database.CompleteRun(ctx, runID, db.StatusCompleted)
	}

	return &Result{
		Campaign:      plan,
		Report:        report,
		RawCount:      len(candidates),
		EmptyResult:   plan.Empty(),
		ExportedFiles: exported,
		RunID:         runID,
	}, nil
}

// exportCampaign writes the campaign in each requested format and returns
// the written file paths.
func exportCampaign(plan *types.Campaign, dir string, formats []string) ([]string, error) {
	var files []string
	for _, format := range formats {
		switch format {
		case "csv":
			sink, err := export.NewCSVDirectory(dir)
			if err != nil {
				return nil, err
			}
			written, err := export.NewExporter(sink).Export(plan)
			if err != nil {
				return nil, err
			}
			files = append(files, written...)
		case "json":
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create output directory: %w", err)
			}
			path := filepath.Join(dir, "campaign.json")
			if err := export.WriteCampaignJSON(path, plan); err != nil {
				return nil, err
			}
			files = append(files, path)
		default:
			return nil, fmt.Errorf("unsupported output format: %s", format)
		}
	}
	return files, nil
}

// failRun marks an in-progress database run as failed. Persistence is best
// effort, so errors are ignored.
func failRun(ctx context.Context, database *db.DB, runID uuid.UUID) {
	if database != nil && runID != uuid.Nil {
		_ = database.CompleteRun(ctx, runID, db.StatusFailed)
	}
}
