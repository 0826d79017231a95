package placement

import (
	"strconv"

	"github.com/arxflow/floorplan/pkg/catalog"
	"github.com/arxflow/floorplan/pkg/ferr"
	"github.com/arxflow/floorplan/pkg/geometry"
	"github.com/arxflow/floorplan/pkg/roomtype"
)

// searchTolerance is the clearance allowed while searching for a candidate
// position; the final check before committing a placement always uses zero
// tolerance.
const searchTolerance = 0.5

// State accumulates placed rooms across a single synthesis run. Footprint,
// if non-zero, bounds every placement. Room ids are monotonic integers
// assigned in insertion order, not random, so that a run over identical
// input produces byte-identical ids.
type State struct {
	Rooms     []Room
	Footprint geometry.Rect
	nextID    int
}

// Request describes one room awaiting placement.
type Request struct {
	Name      string
	Type      roomtype.Type
	IsPrimary bool
	Size      catalog.Option
	Position  PositionSpec
}

func (s *State) findByName(name string) (Room, bool) {
	for _, r := range s.Rooms {
		if r.Name == name {
			return r, true
		}
	}
	return Room{}, false
}

func overlapsAny(candidate geometry.Rect, rooms []Room, exclude string, tolerance float64) (Room, bool) {
	for _, r := range rooms {
		if r.ID == exclude {
			continue
		}
		if candidate.Overlaps(r.Bounds(), tolerance) {
			return r, true
		}
	}
	return Room{}, false
}

func (s *State) withinFootprint(b geometry.Rect) bool {
	if s.Footprint == (geometry.Rect{}) {
		return true
	}
	return s.Footprint.Contains(geometry.Point{X: b.MinX, Y: b.MinY}) &&
		s.Footprint.Contains(geometry.Point{X: b.MaxX, Y: b.MaxY})
}

// Place resolves req's PositionSpec into an origin, and appends the newly
// placed Room to s. It returns a *ferr.FloorplanError for RoomNotFound,
// Overlap, or FootprintExceeded failures.
func (s *State) Place(req Request) (Room, error) {
	if req.Size.Width <= 0 || req.Size.Depth <= 0 {
		return Room{}, ferr.NewInvalidDimensions(req.Name, req.Size.Width, req.Size.Depth)
	}

	var origin geometry.Point
	switch req.Position.Kind {
	case KindAbsolute:
		origin = geometry.Point{X: req.Position.X, Y: req.Position.Y}
	case KindRelative:
		target, ok := s.findByName(req.Position.RelativeTo)
		if !ok {
			return Room{}, ferr.NewRoomNotFound(req.Position.RelativeTo)
		}
		origin = relativeOrigin(target.Bounds(), req.Position.Direction, req.Size, req.Position.Gap)
	case KindAuto:
		var err error
		origin, err = s.autoOrigin(req)
		if err != nil {
			return Room{}, err
		}
	}

	room := Room{
		ID:        strconv.Itoa(s.nextID),
		Name:      req.Name,
		Type:      req.Type,
		IsPrimary: req.IsPrimary,
		Size:      req.Size,
		Origin:    origin,
	}

	bounds := room.Bounds()
	if !s.withinFootprint(bounds) {
		return Room{}, ferr.NewFootprintExceeded(req.Name)
	}
	if conflict, overlap := overlapsAny(bounds, s.Rooms, room.ID, 0); overlap {
		return Room{}, ferr.NewOverlap(req.Name, conflict.Name)
	}

	s.Rooms = append(s.Rooms, room)
	s.nextID++
	return room, nil
}

// relativeOrigin places a room of the given size adjacent to target, shifted
// in the requested direction by the room's own extent along that axis plus
// gap.
func relativeOrigin(target geometry.Rect, dir Direction, size catalog.Option, gap float64) geometry.Point {
	switch dir {
	case North:
		return geometry.Point{X: target.MinX, Y: target.MaxY + gap}
	case South:
		return geometry.Point{X: target.MinX, Y: target.MinY - size.Depth - gap}
	case East:
		return geometry.Point{X: target.MaxX + gap, Y: target.MinY}
	case West:
		return geometry.Point{X: target.MinX - size.Width - gap, Y: target.MinY}
	default:
		return geometry.Point{X: target.MinX, Y: target.MaxY + gap}
	}
}

// preferredAnchors maps a room type to the room types it should be placed
// near first, in priority order, when an adjacency-inferred auto-placement
// plan is available.
var preferredAnchors = map[roomtype.Type][]roomtype.Type{
	roomtype.Bedroom:  {roomtype.Hallway, roomtype.Circulation},
	roomtype.Bathroom: {roomtype.Bedroom, roomtype.Hallway},
	roomtype.Closet:   {roomtype.Bedroom},
	roomtype.Kitchen:  {roomtype.Dining, roomtype.Living},
	roomtype.Dining:   {roomtype.Kitchen},
	roomtype.Mudroom:  {roomtype.Garage},
}

func (s *State) autoOrigin(req Request) (geometry.Point, error) {
	if len(s.Rooms) == 0 {
		return geometry.Point{X: 0, Y: 0}, nil
	}

	if anchor, ok := s.findAdjacencyAnchor(req.Type); ok {
		return s.bestCandidateAround(anchor, req)
	}

	return s.bestCandidateAmongAll(req)
}

func (s *State) findAdjacencyAnchor(t roomtype.Type) (Room, bool) {
	for _, anchorType := range preferredAnchors[t] {
		for _, r := range s.Rooms {
			if r.Type == anchorType {
				return r, true
			}
		}
	}
	return Room{}, false
}

func (s *State) centroidOfAll() geometry.Point {
	var sx, sy float64
	for _, r := range s.Rooms {
		c := r.Centroid()
		sx += c.X
		sy += c.Y
	}
	n := float64(len(s.Rooms))
	return geometry.Point{X: sx / n, Y: sy / n}
}

func candidateOrigins(target geometry.Rect, size catalog.Option) map[Direction]geometry.Point {
	const gap = 1.0
	return map[Direction]geometry.Point{
		North: {X: target.MinX, Y: target.MaxY + gap},
		South: {X: target.MinX, Y: target.MinY - size.Depth - gap},
		East:  {X: target.MaxX + gap, Y: target.MinY},
		West:  {X: target.MinX - size.Width - gap, Y: target.MinY},
	}
}

// bestCandidateAround scores the 4 cardinal candidates around anchor,
// preferring the lowest Euclidean distance from the candidate's centre to
// the centroid of all placed rooms, with req.Position.PreferredDirection
// (if set) breaking ties.
func (s *State) bestCandidateAround(anchor Room, req Request) (geometry.Point, error) {
	return s.scoreCandidates(candidateOrigins(anchor.Bounds(), req.Size), req)
}

// bestCandidateAmongAll enumerates the 4 cardinal sides of every placed
// room and scores every resulting candidate.
func (s *State) bestCandidateAmongAll(req Request) (geometry.Point, error) {
	centroid := s.centroidOfAll()
	var best *geometry.Point
	bestDist := 0.0
	for _, r := range s.Rooms {
		origin, err := s.scoreCandidates(candidateOrigins(r.Bounds(), req.Size), req)
		center := geometry.Point{X: origin.X + req.Size.Width/2, Y: origin.Y + req.Size.Depth/2}
		if d := center.Dist(centroid); err == nil && (best == nil || d < bestDist) {
			best, bestDist = &origin, d
		}
	}
	if best == nil {
		return geometry.Point{}, ferr.NewFootprintExceeded(req.Name)
	}
	return *best, nil
}

// directionOrder fixes the iteration order over candidate directions so
// that distance ties resolve the same way on every run, regardless of Go's
// randomized map iteration order.
var directionOrder = []Direction{North, South, East, West}

func (s *State) scoreCandidates(candidates map[Direction]geometry.Point, req Request) (geometry.Point, error) {
	centroid := s.centroidOfAll()

	type scored struct {
		origin geometry.Point
		dist   float64
		dir    Direction
	}
	var best *scored

	for _, dir := range directionOrder {
		origin, ok := candidates[dir]
		if !ok {
			continue
		}
		bounds := geometry.Rect{MinX: origin.X, MinY: origin.Y, MaxX: origin.X + req.Size.Width, MaxY: origin.Y + req.Size.Depth}
		if !s.withinFootprint(bounds) {
			continue
		}
		if _, overlap := overlapsAny(bounds, s.Rooms, "", searchTolerance); overlap {
			continue
		}
		center := bounds.Center()
		dist := center.Dist(centroid)
		cand := scored{origin: origin, dist: dist, dir: dir}
		if best == nil || cand.dist < best.dist {
			best = &cand
		} else if cand.dist == best.dist && req.Position.PreferredDirection != nil && dir == *req.Position.PreferredDirection {
			best = &cand
		}
	}

	if best == nil {
		return geometry.Point{}, ferr.NewFootprintExceeded(req.Name)
	}
	return best.origin, nil
}
