// Package traffic detects open-plan room clusters (kitchen, living, dining,
// family, great room sharing walls) and generates the notional circulation
// overlays inside them: a primary circulation spine, a kitchen work zone,
// and an entry zone. These overlays never add to the building footprint;
// they are reported separately from walled circulation area.
package traffic
