// Package catalog holds the stable, ordered size options available to each
// room type: for a given RoomType (and whether the room is a primary
// variant), a short list of exact (width, depth) pairs a room can be
// upsized to, ordered by area ascending. Catalogues are immutable package
// state, built once at init and never mutated afterward.
package catalog
