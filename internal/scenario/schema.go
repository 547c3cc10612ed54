package scenario

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all top-level blocks a scenario file may contain. Any file
// may mix block kinds; the loader merges everything it finds across files.
type fileRoot struct {
	Timebases  []*timebaseBlock  `hcl:"timebase,block"`
	Series     []*seriesBlock    `hcl:"series,block"`
	Buses      []*componentBlock `hcl:"bus,block"`
	Sources    []*componentBlock `hcl:"source,block"`
	Sinks      []*componentBlock `hcl:"sink,block"`
	Converters []*componentBlock `hcl:"converter,block"`
	Storages   []*componentBlock `hcl:"storage,block"`
	Remain     hcl.Body          `hcl:",remain"`
}

// timebaseBlock declares the model horizon. Exactly one is allowed across
// all loaded files.
type timebaseBlock struct {
	Start    string `hcl:"start"`
	Steps    int    `hcl:"steps"`
	Interval string `hcl:"interval"`
}

// seriesBlock declares a named per-step profile.
type seriesBlock struct {
	Name   string    `hcl:"name,label"`
	Values []float64 `hcl:"values"`
}

// componentBlock is the shared shape of bus, source, sink, converter and
// storage blocks: a label plus an open attribute body.
type componentBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}
