/*
Package table is the row-set abstraction the build pipeline consumes. A Set
maps table names (buses, sources, sinks, converters, storages) to tables of
labeled rows; a Row exposes typed, presence-aware access to its cells.

The package enforces the basic shape rules the core presumes: every row
carries a label and labels are unique within a table. Everything beyond shape
(capacity rules, bus references, factor counts) is the builder's job.
*/
package table
