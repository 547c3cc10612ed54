// Package scenario loads an energy network description from HCL files into
// the row tables and time base the builder consumes. Component blocks keep
// their attributes loosely typed so the builder owns all interpretation.
package scenario
