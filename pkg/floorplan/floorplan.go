package floorplan

import (
	"context"
	"fmt"

	"github.com/arxflow/floorplan/pkg/budget"
	"github.com/arxflow/floorplan/pkg/circulation"
	"github.com/arxflow/floorplan/pkg/cluster"
	"github.com/arxflow/floorplan/pkg/ferr"
	"github.com/arxflow/floorplan/pkg/geometry"
	"github.com/arxflow/floorplan/pkg/graph"
	"github.com/arxflow/floorplan/pkg/hallway"
	"github.com/arxflow/floorplan/pkg/pathfind"
	"github.com/arxflow/floorplan/pkg/placement"
	"github.com/arxflow/floorplan/pkg/roomtype"
	"github.com/arxflow/floorplan/pkg/spine"
	"github.com/arxflow/floorplan/pkg/traffic"
)

// Artifact is the complete output of a synthesis run: every intermediate
// stage result, kept rather than discarded so a caller (or pkg/export)
// can inspect and render the whole pipeline, not just the final rooms.
type Artifact struct {
	Requirements     []circulation.Requirement
	Spine            circulation.Spine
	Budget           budget.SpaceBudget
	Rooms            []placement.Room
	Graph            *graph.Graph
	Connectivity     graph.ValidationResult
	HallwayNetwork   hallway.Network
	BedroomClusters  []cluster.Cluster
	Corridors        []cluster.CorridorSpec
	OpenPlanClusters []traffic.OpenPlanCluster
	TrafficPaths     []traffic.TrafficPath
	SpineGeometry    spine.Geometry
	Reachability     pathfind.ValidationResult
	Warnings         []string
}

// Synthesize runs the full pipeline in its fixed order: circulation
// requirements, space budget, placement, connectivity graph, hallway MST,
// bedroom clustering, traffic paths, spine geometry, and finally
// reachability validation. ctx is checked between stages; no stage
// performs I/O or can legitimately block, but a caller embedding this
// engine in a larger cancellable pipeline gets the same cooperative-
// cancellation contract as every other stage boundary in this module.
//
// The space budget (UnsatisfiableRequirement when the program's minimum
// area exceeds the footprint), placement, and reachability validation are
// the only stages that can fail a run; every other stage reports
// malformed-but-survivable input as a warning on Artifact instead.
func Synthesize(ctx context.Context, cfg *Config) (*Artifact, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	feel, _ := resolveFeel(cfg.Feel)
	hallwayWidth := cfg.HallwayWidth
	if hallwayWidth <= 0 {
		hallwayWidth = circulation.ParamsFor(feel).HallwayWidth
	}

	program := make([]circulation.ProgramEntry, len(cfg.Rooms))
	for i, r := range cfg.Rooms {
		t, _ := roomtype.ParseType(r.Type)
		program[i] = circulation.ProgramEntry{Name: r.Name, Type: t, Area: r.Area, IsPrimary: r.Primary}
	}

	art := &Artifact{}

	// Stage 3: circulation.
	art.Requirements = circulation.ComputeRequirements(program, cfg.Stories, feel)
	art.Spine = circulation.ComputeSpine(cfg.Footprint.Width, cfg.Footprint.Depth, program, cfg.Stories, feel, cfg.IsLShaped)
	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	// Stage 4: space budget.
	footprintArea := cfg.Footprint.Width * cfg.Footprint.Depth
	spaceBudget, err := budget.CalculateSpaceBudget(footprintArea, program)
	if err != nil {
		return nil, err
	}
	art.Budget = spaceBudget
	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	// Stage 5: placement.
	footprintRect := geometry.Rect{MinX: 0, MinY: 0, MaxX: cfg.Footprint.Width, MaxY: cfg.Footprint.Depth}
	state := &placement.State{Footprint: footprintRect}
	for i, rc := range cfg.Rooms {
		rb := spaceBudget.RoomBudgets[i]
		req := placement.Request{
			Name:      rc.Name,
			Type:      rb.Type,
			IsPrimary: rb.IsPrimary,
			Size:      rb.Current,
			Position:  rc.Position.toPositionSpec(),
		}
		if _, err := state.Place(req); err != nil {
			return nil, err
		}
	}
	art.Rooms = state.Rooms
	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	// Stage 6: connectivity graph.
	nodes := make([]graph.Node, len(state.Rooms))
	for i, r := range state.Rooms {
		nodes[i] = graph.Node{ID: r.ID, Name: r.Name, Type: r.Type, Bounds: r.Bounds()}
	}
	art.Graph = graph.BuildGraph(nodes, nil)
	art.Connectivity = graph.ValidateConnectivity(nodes, nil, cfg.EntryRoom)
	art.Warnings = append(art.Warnings, art.Connectivity.Warnings...)
	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	// Stage 7: hallway minimum spanning network.
	hallwayRefs := make([]hallway.RoomRef, len(state.Rooms))
	for i, r := range state.Rooms {
		hallwayRefs[i] = hallway.RoomRef{ID: r.ID, Name: r.Name, Type: r.Type, Centroid: r.Centroid(), Bounds: r.Bounds()}
	}
	art.HallwayNetwork = hallway.Compute(hallwayRefs, hallwayWidth)
	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	// Stage 8: bedroom clustering and cluster corridors.
	var bedroomRefs, bathroomRefs []cluster.RoomRef
	for _, r := range state.Rooms {
		ref := cluster.RoomRef{ID: r.ID, Name: r.Name, Type: r.Type, Centroid: r.Centroid(), Bounds: r.Bounds()}
		switch r.Type {
		case roomtype.Bedroom:
			bedroomRefs = append(bedroomRefs, ref)
		case roomtype.Bathroom:
			bathroomRefs = append(bathroomRefs, ref)
		}
	}
	art.BedroomClusters = cluster.Detect(bedroomRefs, bathroomRefs)
	for _, c := range art.BedroomClusters {
		art.Corridors = append(art.Corridors, cluster.GenerateCorridor(c, hallwayWidth))
	}
	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	// Stage 9: open-plan traffic paths.
	trafficRefs := make([]traffic.RoomRef, len(state.Rooms))
	for i, r := range state.Rooms {
		trafficRefs[i] = traffic.RoomRef{ID: r.ID, Name: r.Name, Type: r.Type, Centroid: r.Centroid(), Bounds: r.Bounds()}
	}
	art.OpenPlanClusters = traffic.DetectOpenPlanClusters(trafficRefs)
	for _, c := range art.OpenPlanClusters {
		art.TrafficPaths = append(art.TrafficPaths, traffic.GeneratePrimaryTrafficPath(c))
		if zone, ok := traffic.GenerateKitchenWorkZone(c); ok {
			art.TrafficPaths = append(art.TrafficPaths, zone)
		}
	}
	if entry, ok := findRoomByName(state.Rooms, cfg.EntryRoom); ok && len(art.OpenPlanClusters) > 0 {
		art.TrafficPaths = append(art.TrafficPaths, traffic.GenerateEntryZone(art.OpenPlanClusters[0], entry.Centroid()))
	}
	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	// Stage 10: spine geometry.
	roomBounds := make([]geometry.Rect, len(state.Rooms))
	for i, r := range state.Rooms {
		roomBounds[i] = r.Bounds()
	}
	art.SpineGeometry = spine.Generate(art.HallwayNetwork, hallwayWidth, art.Corridors, art.TrafficPaths, rectPolygon(footprintRect), roomBounds)
	art.Warnings = append(art.Warnings, art.SpineGeometry.Warnings...)
	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	// Stage 11: pathfinder reachability validation.
	pathfindRooms := make([]pathfind.RoomRef, len(state.Rooms))
	for i, r := range state.Rooms {
		pathfindRooms[i] = pathfind.RoomRef{ID: r.ID, Name: r.Name, Type: r.Type, Bounds: r.Bounds()}
	}
	var circulationPolys [][]geometry.Point
	for _, hp := range art.SpineGeometry.HallwayPolygons {
		circulationPolys = append(circulationPolys, hp.Vertices)
	}
	for _, jp := range art.SpineGeometry.JunctionPolygons {
		circulationPolys = append(circulationPolys, jp.Vertices)
	}
	var doors []pathfind.Door
	for _, c := range art.Corridors {
		for _, d := range c.Doors {
			doors = append(doors, pathfind.Door{RoomID: d.RoomID, Point: d.Point})
		}
	}

	art.Reachability = pathfind.ValidateAllRoomsReachable(pathfindRooms, circulationPolys, doors, cfg.EntryRoom)
	if !art.Reachability.AllReachable {
		return nil, ferr.NewUnreachable(art.Reachability.Unreachable)
	}

	return art, nil
}

func checkDone(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func findRoomByName(rooms []placement.Room, name string) (placement.Room, bool) {
	for _, r := range rooms {
		if r.Name == name {
			return r, true
		}
	}
	return placement.Room{}, false
}

func rectPolygon(r geometry.Rect) []geometry.Point {
	return []geometry.Point{
		{X: r.MinX, Y: r.MinY}, {X: r.MaxX, Y: r.MinY}, {X: r.MaxX, Y: r.MaxY}, {X: r.MinX, Y: r.MaxY},
	}
}
