// Package circulation computes the non-negotiable movement space a floor
// plan must set aside before any room gets to claim square footage: the
// foyer, the bedroom hallway, the public/private zone transition, the
// stairwell and its landings, door clearances, and the mudroom. It also
// picks the spine topology (linear, branching, hub-and-spoke) a later
// geometry stage will realise as polygons.
package circulation
