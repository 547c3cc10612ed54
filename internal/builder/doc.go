/*
Package builder turns a validated row-set into the finished flow graph. It is
the bridge between the tabular network description (the 'table' package) and
the graph container a solver adapter consumes (the 'model' package).

Construction is a single linear pass with no feedback loops:

 1. Bus discovery: every component table is scanned for bus references, the
    deduplicated label set is materialized into bus nodes (delegated to the
    'busreg' package).

 2. Component assembly: each row becomes one typed node with attached flows.
    Exactly one flow per component carries the capacity descriptor — sized by
    the 'invest' package when the row declares investment, otherwise fixed to
    the row's existing capacity. All field validation for a row happens before
    any object is constructed for it.

 3. Registration and diagnostics: the accumulated node list is registered into
    the graph in deterministic build order (buses first, label-sorted, then
    components in row order) and a connectivity report is computed. Isolated
    buses, zero-cost investments and annuity fallbacks are recorded as
    diagnostics on the result; they never abort the build.

Any validation failure aborts the whole build: no partial graph is ever handed
downstream, because a structurally inconsistent graph would silently yield a
meaningless optimization later. Every error names the offending table, row
label and field.
*/
package builder
