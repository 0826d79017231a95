package catalog

import "fmt"

// Tier classifies a RoomSizeOption within its catalogue.
type Tier int

const (
	Minimum Tier = iota
	Nice
	Extra
	Premium
)

func (t Tier) String() string {
	switch t {
	case Minimum:
		return "minimum"
	case Nice:
		return "nice"
	case Extra:
		return "extra"
	case Premium:
		return "premium"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}
