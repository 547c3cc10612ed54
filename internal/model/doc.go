/*
Package model defines the domain types the build pipeline produces: buses,
flows, capacity descriptors, the four component kinds, the shared time base,
and the graph container that is handed to a solver adapter.

Everything in this package is plain data. Values are assembled once by the
builder and treated as immutable afterwards; exporters and solver adapters
read the graph, they never mutate it.
*/
package model
