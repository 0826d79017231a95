package budget

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arxflow/floorplan/pkg/catalog"
	"github.com/arxflow/floorplan/pkg/circulation"
	"github.com/arxflow/floorplan/pkg/ferr"
	"github.com/arxflow/floorplan/pkg/roomtype"
)

var primaryMarkers = []string{"primary", "master", "main", "ensuite"}

// IsPrimaryRoom reports whether name identifies a primary room instance by
// case-insensitive substring match against "primary", "master", "main", or
// "ensuite".
func IsPrimaryRoom(name string) bool {
	lower := strings.ToLower(name)
	for _, m := range primaryMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// circulationTypes never receive an expansion or priority bonus; they are
// the circulation package's own output, not program rooms.
func isCirculationType(t roomtype.Type) bool {
	switch t {
	case roomtype.Hallway, roomtype.Circulation, roomtype.Stair, roomtype.Landing:
		return true
	default:
		return false
	}
}

// RoomBudget is the resolved catalogue option and bookkeeping for one
// program entry.
type RoomBudget struct {
	Name      string
	Type      roomtype.Type
	IsPrimary bool
	Priority  int
	Current   catalog.Option
	Allocated float64
}

// Expansion records one upsizing step applied to a room.
type Expansion struct {
	Name  string
	From  float64
	To    float64
	Delta float64
}

// SuggestionKind classifies what to do with unused leftover area.
type SuggestionKind int

const (
	ExpandRoom SuggestionKind = iota
	AddStorage
	AddUtility
	ShrinkFootprint
)

func (s SuggestionKind) String() string {
	switch s {
	case ExpandRoom:
		return "expand_room"
	case AddStorage:
		return "add_storage"
	case AddUtility:
		return "add_utility"
	case ShrinkFootprint:
		return "shrink_footprint"
	default:
		return "unknown"
	}
}

// Suggestion is advisory guidance on what to do with leftover area.
type Suggestion struct {
	Kind   SuggestionKind
	Reason string
}

// AllocationPlan is the outcome of the two-pass upsizing algorithm.
type AllocationPlan struct {
	Expansions     []Expansion
	TotalAllocated float64
	Leftover       float64
	Suggestions    []Suggestion
}

// SpaceBudget is the full result of CalculateSpaceBudget.
type SpaceBudget struct {
	FootprintArea   float64
	MinimumRequired float64
	Excess          float64
	RoomBudgets     []RoomBudget
	Plan            AllocationPlan
}

func priorityOf(p circulation.ProgramEntry) int {
	if isCirculationType(p.Type) {
		return 0
	}
	pr := roomtype.AdjacencyPriority[p.Type]
	if p.IsPrimary || IsPrimaryRoom(p.Name) {
		pr += 20
	}
	return pr
}

// CalculateSpaceBudget resolves a catalogue option for every program entry,
// computes the footprint's excess over the sum of minima, then upsizes
// rooms by priority order (primary rooms get +20) until the excess is
// exhausted or no further upsize fits. Returns an error only when the
// program's minimum required area exceeds the footprint outright.
func CalculateSpaceBudget(footprintArea float64, program []circulation.ProgramEntry) (SpaceBudget, error) {
	budgets := make([]RoomBudget, len(program))
	minimumRequired := 0.0

	for i, p := range program {
		opt := catalog.FindOptionForArea(p.Type, p.Area, p.IsPrimary || IsPrimaryRoom(p.Name))
		budgets[i] = RoomBudget{
			Name:      p.Name,
			Type:      p.Type,
			IsPrimary: p.IsPrimary || IsPrimaryRoom(p.Name),
			Priority:  priorityOf(p),
			Current:   opt,
			Allocated: opt.Area,
		}
		minimumRequired += opt.Area
	}

	if minimumRequired > footprintArea {
		return SpaceBudget{}, ferr.NewUnsatisfiableRequirement(minimumRequired, footprintArea)
	}

	excess := footprintArea - minimumRequired

	order := make([]int, len(budgets))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return budgets[order[a]].Priority > budgets[order[b]].Priority
	})

	remaining := excess
	var expansions []Expansion

	upsize := func(idx int) bool {
		b := &budgets[idx]
		if isCirculationType(b.Type) {
			return false
		}
		next, ok := catalog.FindNextSizeUp(b.Type, b.Allocated, remaining, b.IsPrimary)
		if !ok {
			return false
		}
		delta := next.Area - b.Allocated
		expansions = append(expansions, Expansion{Name: b.Name, From: b.Allocated, To: next.Area, Delta: delta})
		b.Allocated = next.Area
		b.Current = next
		remaining -= delta
		return true
	}

	// First pass.
	for _, idx := range order {
		upsize(idx)
	}

	// Second pass: if meaningful excess remains, give high-priority rooms
	// another chance at the next tier up.
	if remaining > 50 {
		for _, idx := range order {
			if budgets[idx].Priority >= 50 {
				upsize(idx)
			}
		}
	}

	totalAllocated := 0.0
	for _, b := range budgets {
		totalAllocated += b.Allocated
	}

	suggestions := suggestionsFor(remaining)

	return SpaceBudget{
		FootprintArea:   footprintArea,
		MinimumRequired: minimumRequired,
		Excess:          excess,
		RoomBudgets:     budgets,
		Plan: AllocationPlan{
			Expansions:     expansions,
			TotalAllocated: totalAllocated,
			Leftover:       remaining,
			Suggestions:    suggestions,
		},
	}, nil
}

func suggestionsFor(leftover float64) []Suggestion {
	if leftover <= 0 {
		return nil
	}
	switch {
	case leftover < 20:
		return []Suggestion{{Kind: ExpandRoom, Reason: fmt.Sprintf("%.1f sq ft is enough for a modest expansion of one room", leftover)}}
	case leftover <= 50:
		return []Suggestion{{Kind: AddStorage, Reason: fmt.Sprintf("%.1f sq ft could add a storage closet", leftover)}}
	case leftover <= 100:
		return []Suggestion{{Kind: AddUtility, Reason: fmt.Sprintf("%.1f sq ft could add a utility room", leftover)}}
	default:
		return []Suggestion{{Kind: ShrinkFootprint, Reason: fmt.Sprintf("%.1f sq ft unused suggests the footprint is larger than the program needs", leftover)}}
	}
}
