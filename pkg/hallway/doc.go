// Package hallway computes the minimum spanning hallway network connecting
// every room that needs direct or indirect access to the public zone, and
// detects the junction points where multiple hallway centerlines converge.
package hallway
