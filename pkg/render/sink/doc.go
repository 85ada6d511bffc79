// Package sink writes a hemicycle layout together with its seating plan.
//
// [RenderSVG] draws the chamber directly. [RenderJSON] exports the seat
// geometry and assignments for other tools. [ToDOT] emits a Graphviz
// graph with every seat pinned at its position, and [RenderDOTSVG] lays
// it out in-process with neato.
//
// All sinks expect a plan built for the layout's seat count; a mismatch
// is reported as an INVALID_SEATS error.
package sink
