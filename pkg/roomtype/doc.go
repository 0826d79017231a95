// Package roomtype defines the closed set of room types, the per-type
// access contract, and the zone classification used throughout the
// synthesis pipeline. These are the tagged-variant replacements for the
// string discriminators the spec describes (design note in spec.md §9):
// runtime string switches become exhaustive Go type switches over small
// integer enums.
package roomtype
