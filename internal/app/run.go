package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/enflow/internal/builder"
	"github.com/vk/enflow/internal/ctxlog"
	"github.com/vk/enflow/internal/listfield"
	"github.com/vk/enflow/internal/report"
	"github.com/vk/enflow/internal/solve"
)

// Run executes the full pipeline: load the scenario, assemble the graph,
// write the reports, and hand the graph to the configured solver.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	tables, tb, err := a.loader.Load(ctx, cfg.ScenarioPath)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}
	a.logger.Debug("Scenario loaded.", "steps", tb.Steps())

	split := listfield.NewSplitter(a.settings.Separators()...)
	result, err := builder.Build(ctx, tables, tb, builder.WithSplitter(split))
	if err != nil {
		return fmt.Errorf("assembling model: %w", err)
	}
	for _, diag := range result.Diagnostics {
		a.logger.Warn("model diagnostic", "table", diag.Table, "label", diag.Label, "detail", diag.Message)
	}

	summary := report.Summarize(result.Graph, result.Connectivity)
	investments := report.Investments(result.Graph)
	if err := a.writeReports(summary, investments); err != nil {
		return err
	}

	solver := a.solver()
	solution, err := solver.Solve(ctx, result.Graph)
	if err != nil {
		return fmt.Errorf("solving model: %w", err)
	}
	a.logger.Info("run complete",
		"run_id", result.Graph.RunID(),
		"nodes", result.Graph.Len(),
		"solver", solution.Solver,
		"objective", solution.Objective,
		"capacity_decisions", len(solution.Capacities),
	)

	a.logger.Debug("App.Run method finished.")
	return nil
}

// solver resolves the configured solver name. Only the pass-through solver
// ships in-process; external LP backends consume the exported reports.
func (a *App) solver() solve.Solver {
	if a.settings.Solver != "null" {
		a.logger.Warn("solver runs out of process, using pass-through capacities", "solver", a.settings.Solver)
	}
	return solve.NewNullSolver()
}

// writeReports renders the model and investment summaries into the output
// directory, once per configured export format.
func (a *App) writeReports(summary report.ModelSummary, investments report.InvestmentSummary) error {
	if err := os.MkdirAll(a.settings.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	write := func(name string, v any) error {
		for _, format := range a.settings.ExportFormats {
			path := filepath.Join(a.settings.OutputDir, name+"."+format)
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating report file: %w", err)
			}
			switch format {
			case "yaml":
				err = report.WriteYAML(f, v)
			default:
				err = report.WriteJSON(f, v)
			}
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return fmt.Errorf("writing report %s: %w", path, err)
			}
			a.logger.Debug("report written", "path", path)
		}
		return nil
	}

	if err := write("model_summary", summary); err != nil {
		return err
	}
	return write("investments", investments)
}
