// Package seating assigns parliamentary groups to the seats of a chamber.
//
// # Overview
//
// A chamber's seats are numbered in a canonical order (see the hemicycle
// package). This package walks that order and hands each group a block of
// seats together with a confidence status:
//
//   - [StatusCertain]: the seat is won by the group
//   - [StatusLikely]: the seat falls between the lower bound and the median
//   - [StatusUnlikely]: the seat falls between the median and the total
//
// Group sizes are either exact ([Simple]) or confidence intervals
// ([Differentiated]). Only differentiated sizes produce uncertain seats.
//
// # Plans
//
// [SeatingPlan] hands out seats strictly in canonical order: every group
// claims the next contiguous block.
//
// [RowConnectedSeatingPlan] starts each group at the first free seat but then
// prefers seats whose row lies next to the rows the group already occupies,
// which keeps groups in compact wedges on multi-row layouts. It needs the row
// of every seat and accepts anything implementing [RowLayout], typically a
// *hemicycle.Layout.
//
// Both satisfy [Plan] and are immutable once constructed.
//
// # Uncertainty Banding
//
// A differentiated block is split into lowerBound certain seats,
// median-lowerBound likely seats and total-median unlikely seats. Blocks that
// start in the left half of the chamber put their certain seats first;
// blocks in the right half mirror this so that uncertainty always points
// towards the middle of the chamber.
package seating
