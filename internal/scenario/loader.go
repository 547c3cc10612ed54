package scenario

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/enflow/internal/ctxlog"
	"github.com/vk/enflow/internal/model"
	"github.com/vk/enflow/internal/table"
)

// Loader parses scenario HCL files into row tables and a time base.
type Loader struct{}

// NewLoader creates a scenario loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load walks the given paths, parses every .hcl file found, and merges all
// blocks into one table set and time base. Exactly one timebase block must
// exist across all files, and every series must match its step count.
func (l *Loader) Load(ctx context.Context, paths ...string) (table.Set, model.TimeBase, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("scenario loader started", "path_count", len(paths))

	files, err := l.findHCLFiles(paths)
	if err != nil {
		return nil, model.TimeBase{}, err
	}
	if len(files) == 0 {
		return nil, model.TimeBase{}, fmt.Errorf("no scenario files found under %v", paths)
	}
	logger.Debug("discovered scenario files", "count", len(files))

	parser := hclparse.NewParser()
	var (
		timebase *timebaseBlock
		series   []*seriesBlock
	)
	blocks := map[string][]*componentBlock{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, model.TimeBase{}, fmt.Errorf("parsing scenario file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, model.TimeBase{}, fmt.Errorf("decoding scenario file %s: %w", file, diags)
		}

		for _, tb := range root.Timebases {
			if timebase != nil {
				return nil, model.TimeBase{}, fmt.Errorf("scenario file %s: duplicate timebase block", file)
			}
			timebase = tb
		}
		series = append(series, root.Series...)
		blocks[table.Buses] = append(blocks[table.Buses], root.Buses...)
		blocks[table.Sources] = append(blocks[table.Sources], root.Sources...)
		blocks[table.Sinks] = append(blocks[table.Sinks], root.Sinks...)
		blocks[table.Converters] = append(blocks[table.Converters], root.Converters...)
		blocks[table.Storages] = append(blocks[table.Storages], root.Storages...)
	}

	if timebase == nil {
		return nil, model.TimeBase{}, fmt.Errorf("scenario declares no timebase block")
	}
	tb, err := l.buildTimeBase(timebase, series)
	if err != nil {
		return nil, model.TimeBase{}, err
	}

	tables := table.NewSet()
	for name, comps := range blocks {
		t := table.NewTable(name)
		for _, comp := range comps {
			row, err := l.componentRow(comp)
			if err != nil {
				return nil, model.TimeBase{}, fmt.Errorf("table %q: %w", name, err)
			}
			if err := t.Append(row); err != nil {
				return nil, model.TimeBase{}, err
			}
		}
		tables.Add(t)
	}

	logger.Debug("scenario loading complete",
		"steps", tb.Steps(),
		"series", len(series),
		"buses", tables.Table(table.Buses).Len(),
		"sources", tables.Table(table.Sources).Len(),
		"sinks", tables.Table(table.Sinks).Len(),
		"converters", tables.Table(table.Converters).Len(),
		"storages", tables.Table(table.Storages).Len(),
	)
	return tables, tb, nil
}

// buildTimeBase expands the declared horizon into explicit timestamps and
// registers every series against it.
func (l *Loader) buildTimeBase(block *timebaseBlock, series []*seriesBlock) (model.TimeBase, error) {
	start, err := time.Parse(time.RFC3339, block.Start)
	if err != nil {
		return model.TimeBase{}, fmt.Errorf("timebase start %q: %w", block.Start, err)
	}
	interval, err := time.ParseDuration(block.Interval)
	if err != nil {
		return model.TimeBase{}, fmt.Errorf("timebase interval %q: %w", block.Interval, err)
	}
	if block.Steps <= 0 {
		return model.TimeBase{}, fmt.Errorf("timebase steps must be positive, got %d", block.Steps)
	}
	if interval <= 0 {
		return model.TimeBase{}, fmt.Errorf("timebase interval must be positive, got %s", interval)
	}

	timestamps := make([]time.Time, block.Steps)
	for i := range timestamps {
		timestamps[i] = start.Add(time.Duration(i) * interval)
	}
	tb, err := model.NewTimeBase(timestamps)
	if err != nil {
		return model.TimeBase{}, err
	}

	for _, s := range series {
		if err := tb.AddSeries(s.Name, s.Values); err != nil {
			return model.TimeBase{}, fmt.Errorf("series %q: %w", s.Name, err)
		}
	}
	return tb, nil
}

// componentRow flattens a component block body into a loosely typed row.
func (l *Loader) componentRow(comp *componentBlock) (table.Row, error) {
	fields := map[string]any{}
	if comp.Body != nil {
		attrs, diags := comp.Body.JustAttributes()
		if diags.HasErrors() {
			return table.Row{}, fmt.Errorf("component %q: %w", comp.Name, diags)
		}
		for name, attr := range attrs {
			val, valDiags := attr.Expr.Value(nil)
			if valDiags.HasErrors() {
				return table.Row{}, fmt.Errorf("component %q attribute %q: %w", comp.Name, name, valDiags)
			}
			goVal, err := fromCty(val)
			if err != nil {
				return table.Row{}, fmt.Errorf("component %q attribute %q: %w", comp.Name, name, err)
			}
			fields[name] = goVal
		}
	}
	return table.NewRow(comp.Name, fields), nil
}

// fromCty converts a scalar cty value into the loose Go value a row cell
// holds. Collections are rejected; multi-value cells use delimited strings.
func fromCty(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}
	switch val.Type() {
	case cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return f, nil
	case cty.Bool:
		return val.True(), nil
	case cty.String:
		return val.AsString(), nil
	default:
		return nil, fmt.Errorf("unsupported attribute type %s", val.Type().FriendlyName())
	}
}

// findHCLFiles walks all given paths and returns every .hcl file found,
// deduplicated, in walk order.
func (l *Loader) findHCLFiles(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("accessing scenario path %s: %w", path, err)
		}

		if info.IsDir() {
			err := filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && filepath.Ext(p) == ".hcl" {
					if _, ok := seen[p]; !ok {
						all = append(all, p)
						seen[p] = struct{}{}
					}
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		} else if filepath.Ext(path) == ".hcl" {
			if _, ok := seen[path]; !ok {
				all = append(all, path)
				seen[path] = struct{}{}
			}
		}
	}
	return all, nil
}
