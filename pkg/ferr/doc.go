// Package ferr defines the tagged error kinds shared across the floor-plan
// synthesis pipeline. Every fatal outcome in this module is a *FloorplanError
// with a stable Kind, a human message, and a recovery hint; stages that can
// survive malformed input collect warnings instead of returning one of these.
package ferr
