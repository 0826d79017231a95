package catalog

import "github.com/arxflow/floorplan/pkg/roomtype"

// Option is one entry in a room type's size catalogue: an exact
// (width, depth) pair, its derived area, a tier classification, and a
// human-readable description.
type Option struct {
	Width       float64
	Depth       float64
	Area        float64
	Tier        Tier
	Description string
}

func opt(w, d float64, tier Tier, desc string) Option {
	return Option{Width: w, Depth: d, Area: w * d, Tier: tier, Description: desc}
}

type key struct {
	t       roomtype.Type
	primary bool
}

// catalogues maps (RoomType, isPrimary) to a strictly area-ascending list of
// Options. Built once at init and never mutated.
var catalogues = map[key][]Option{
	{roomtype.Bedroom, false}: {
		opt(10, 10, Minimum, "compact bedroom"),
		opt(10, 11, Nice, "comfortable bedroom"),
		opt(10, 12, Extra, "spacious bedroom"),
		opt(10, 14, Premium, "generous bedroom"),
	},
	{roomtype.Bedroom, true}: {
		opt(12, 14, Minimum, "compact primary bedroom"),
		opt(13, 14, Nice, "comfortable primary bedroom"),
		opt(14, 14, Extra, "spacious primary bedroom"),
		opt(14, 16, Premium, "generous primary bedroom"),
	},
	{roomtype.Bathroom, false}: {
		opt(5, 5, Minimum, "half bath"),
		opt(5, 7, Nice, "full bath"),
		opt(5, 9, Extra, "comfortable bath"),
		opt(6, 10, Premium, "spacious bath"),
	},
	{roomtype.Bathroom, true}: {
		opt(6, 10, Minimum, "compact ensuite"),
		opt(7, 10, Nice, "comfortable ensuite"),
		opt(8, 10, Extra, "spacious ensuite"),
		opt(8, 12.5, Premium, "spa-style ensuite"),
	},
	{roomtype.Closet, false}: {
		opt(3, 4, Minimum, "reach-in closet"),
		opt(4, 4, Nice, "deep reach-in closet"),
		opt(4, 5, Extra, "small walk-in closet"),
		opt(4, 6, Premium, "walk-in closet"),
	},
	{roomtype.Closet, true}: {
		opt(6, 6, Minimum, "compact walk-in closet"),
		opt(6, 7, Nice, "comfortable walk-in closet"),
		opt(6, 8, Extra, "spacious walk-in closet"),
		opt(6, 10, Premium, "dressing-room closet"),
	},
	{roomtype.Kitchen, false}: {
		opt(10, 10, Minimum, "compact kitchen"),
		opt(10, 12, Nice, "comfortable kitchen"),
		opt(12, 12, Extra, "spacious kitchen"),
		opt(12, 14, Premium, "gourmet kitchen"),
	},
	{roomtype.Living, false}: {
		opt(12, 12, Minimum, "compact living room"),
		opt(12, 14, Nice, "comfortable living room"),
		opt(14, 14, Extra, "spacious living room"),
		opt(14, 16, Premium, "grand living room"),
	},
	{roomtype.Dining, false}: {
		opt(10, 10, Minimum, "compact dining room"),
		opt(10, 12, Nice, "comfortable dining room"),
		opt(11, 12, Extra, "spacious dining room"),
		opt(12, 12, Premium, "grand dining room"),
	},
	{roomtype.Family, false}: {
		opt(12, 12, Minimum, "compact family room"),
		opt(12, 14, Nice, "comfortable family room"),
		opt(14, 14, Extra, "spacious family room"),
		opt(15, 15, Premium, "grand family room"),
	},
	{roomtype.GreatRoom, false}: {
		opt(14, 14, Minimum, "compact great room"),
		opt(15, 15, Nice, "comfortable great room"),
		opt(16, 16, Extra, "spacious great room"),
		opt(17, 17, Premium, "grand great room"),
	},
	{roomtype.Office, false}: {
		opt(8, 10, Minimum, "compact office"),
		opt(10, 10, Nice, "comfortable office"),
		opt(10, 12, Extra, "spacious office"),
		opt(12, 12, Premium, "grand office"),
	},
	{roomtype.Laundry, false}: {
		opt(5, 7, Minimum, "compact laundry"),
		opt(6, 7, Nice, "comfortable laundry"),
		opt(6, 8, Extra, "spacious laundry"),
		opt(7, 8, Premium, "mudroom-adjacent laundry"),
	},
	{roomtype.Pantry, false}: {
		opt(4, 4, Minimum, "reach-in pantry"),
		opt(4, 5, Nice, "comfortable pantry"),
		opt(4, 6, Extra, "walk-in pantry"),
		opt(5, 6, Premium, "butler's pantry"),
	},
	{roomtype.Mudroom, false}: {
		opt(6, 6, Minimum, "compact mudroom"),
		opt(6, 7, Nice, "comfortable mudroom"),
		opt(6, 8, Extra, "spacious mudroom"),
		opt(6, 9, Premium, "mudroom with cubbies"),
	},
	{roomtype.Foyer, false}: {
		opt(6, 6, Minimum, "compact foyer"),
		opt(6, 8, Nice, "comfortable foyer"),
		opt(8, 8, Extra, "grand foyer"),
		opt(8, 10, Premium, "two-story foyer"),
	},
	{roomtype.Patio, false}: {
		opt(10, 10, Minimum, "compact patio"),
		opt(12, 12, Nice, "comfortable patio"),
		opt(14, 14, Extra, "spacious patio"),
		opt(16, 16, Premium, "grand patio"),
	},
	{roomtype.Deck, false}: {
		opt(10, 10, Minimum, "compact deck"),
		opt(10, 12, Nice, "comfortable deck"),
		opt(12, 12, Extra, "spacious deck"),
		opt(12, 14, Premium, "grand deck"),
	},
	{roomtype.Garage, false}: {
		opt(12, 20, Minimum, "one-car garage"),
		opt(12, 22, Nice, "one-car garage with storage"),
		opt(12, 24, Extra, "deep one-car garage"),
		opt(20, 22, Premium, "two-car garage"),
	},
	{roomtype.Utility, false}: {
		opt(5, 5, Minimum, "compact utility room"),
		opt(5, 7, Nice, "comfortable utility room"),
		opt(6, 7, Extra, "spacious utility room"),
		opt(6, 8, Premium, "utility room with storage"),
	},
	{roomtype.Other, false}: {
		opt(10, 10, Minimum, "compact flex room"),
		opt(10, 12, Nice, "comfortable flex room"),
		opt(12, 12, Extra, "spacious flex room"),
		opt(12, 14, Premium, "grand flex room"),
	},
	{roomtype.Hallway, false}: {
		opt(3, 7, Minimum, "narrow hallway segment"),
		opt(3, 8, Nice, "standard hallway segment"),
		opt(4, 7, Extra, "wide hallway segment"),
		opt(4, 8, Premium, "generous hallway segment"),
	},
	{roomtype.Circulation, false}: {
		opt(3, 7, Minimum, "narrow circulation segment"),
		opt(3, 8, Nice, "standard circulation segment"),
		opt(4, 7, Extra, "wide circulation segment"),
		opt(4, 8, Premium, "generous circulation segment"),
	},
	{roomtype.Stair, false}: {
		opt(3, 14, Minimum, "compact stairwell"),
		opt(3.5, 14, Nice, "standard stairwell"),
		opt(4, 14, Extra, "wide stairwell"),
		opt(4.5, 14, Premium, "grand stairwell"),
	},
	{roomtype.Landing, false}: {
		opt(4, 5, Minimum, "compact landing"),
		opt(5, 5, Nice, "standard landing"),
		opt(5, 6, Extra, "wide landing"),
		opt(6, 6, Premium, "grand landing"),
	},
}

// catalogFor returns the ordered catalogue for t/primary, falling back to
// the non-primary catalogue if no primary-specific catalogue exists, and to
// the Other catalogue if t itself is unrecognised.
func catalogFor(t roomtype.Type, primary bool) []Option {
	if primary {
		if c, ok := catalogues[key{t, true}]; ok {
			return c
		}
	}
	if c, ok := catalogues[key{t, false}]; ok {
		return c
	}
	return catalogues[key{roomtype.Other, false}]
}

// FindOptionForArea returns the smallest catalogue option whose area is >=
// target, or the largest option if none is big enough. Ties (equal area)
// are broken by declared catalogue order, the first-found entry wins.
func FindOptionForArea(t roomtype.Type, target float64, primary bool) Option {
	c := catalogFor(t, primary)
	for _, o := range c {
		if o.Area >= target {
			return o
		}
	}
	return c[len(c)-1]
}

// FindNextSizeUp returns the smallest catalogue option strictly larger than
// currentArea whose area delta over currentArea is <= maxExtra, and true.
// If no such option exists, it returns the zero Option and false.
func FindNextSizeUp(t roomtype.Type, currentArea, maxExtra float64, primary bool) (Option, bool) {
	c := catalogFor(t, primary)
	for _, o := range c {
		if o.Area <= currentArea {
			continue
		}
		delta := o.Area - currentArea
		if delta <= maxExtra {
			return o, true
		}
	}
	return Option{}, false
}
