package floorplan

import (
	"crypto/sha256"
	"fmt"
	"os"

	"github.com/arxflow/floorplan/pkg/circulation"
	"github.com/arxflow/floorplan/pkg/placement"
	"github.com/arxflow/floorplan/pkg/roomtype"
	"gopkg.in/yaml.v3"
)

// FootprintConfig is the building envelope: a rectangle width and depth in
// feet.
type FootprintConfig struct {
	Width float64 `yaml:"width"`
	Depth float64 `yaml:"depth"`
}

// PositionConfig describes how one room's origin should be resolved:
// absolute coordinates, relative to an earlier room, or left to the
// auto-placement heuristics. Kind defaults to "auto" when left blank.
type PositionConfig struct {
	Kind               string  `yaml:"kind,omitempty"`
	X                  float64 `yaml:"x,omitempty"`
	Y                  float64 `yaml:"y,omitempty"`
	Direction          string  `yaml:"direction,omitempty"`
	RelativeTo         string  `yaml:"relative_to,omitempty"`
	Gap                float64 `yaml:"gap,omitempty"`
	PreferredDirection string  `yaml:"preferred_direction,omitempty"`
}

// RoomConfig is one line of the room program: a named room of a given
// type, its requested area (the catalogue resolves the nearest size at or
// above this), and how it should be positioned.
type RoomConfig struct {
	Name     string         `yaml:"name"`
	Type     string         `yaml:"type"`
	Area     float64        `yaml:"area"`
	Primary  bool           `yaml:"primary,omitempty"`
	Position PositionConfig `yaml:"position"`
}

// Config is the full YAML-parseable description of a synthesis run: the
// footprint, story count, qualitative feel, L-shape flag, entry room, an
// optional hallway width override, and the room program.
type Config struct {
	Footprint    FootprintConfig `yaml:"footprint"`
	Stories      int             `yaml:"stories"`
	Feel         string          `yaml:"feel"`
	IsLShaped    bool            `yaml:"is_l_shaped,omitempty"`
	EntryRoom    string          `yaml:"entry_room"`
	HallwayWidth float64         `yaml:"hallway_width,omitempty"`
	Rooms        []RoomConfig    `yaml:"rooms"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses and validates YAML configuration from a byte
// slice. Useful for testing and programmatic config generation.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks all configuration constraints, returning an error
// describing the first failure found.
func (c *Config) Validate() error {
	if c.Footprint.Width <= 0 || c.Footprint.Depth <= 0 {
		return fmt.Errorf("footprint: width and depth must both be > 0, got %.2fx%.2f", c.Footprint.Width, c.Footprint.Depth)
	}
	if c.Stories < 1 {
		return fmt.Errorf("stories must be >= 1, got %d", c.Stories)
	}
	if _, ok := resolveFeel(c.Feel); !ok {
		return fmt.Errorf("feel: unrecognised value %q (want cozy, comfortable, or spacious)", c.Feel)
	}
	if c.HallwayWidth < 0 {
		return fmt.Errorf("hallway_width must be >= 0, got %.2f", c.HallwayWidth)
	}
	if len(c.Rooms) == 0 {
		return fmt.Errorf("rooms: at least one room must be specified")
	}

	seen := make(map[string]bool, len(c.Rooms))
	for i, r := range c.Rooms {
		if r.Name == "" {
			return fmt.Errorf("rooms[%d]: name must not be empty", i)
		}
		if seen[r.Name] {
			return fmt.Errorf("rooms[%d]: duplicate room name %q", i, r.Name)
		}
		seen[r.Name] = true

		if _, ok := roomtype.ParseType(r.Type); !ok {
			return fmt.Errorf("rooms[%d] %q: unrecognised type %q", i, r.Name, r.Type)
		}
		if r.Area < 0 {
			return fmt.Errorf("rooms[%d] %q: area must be >= 0, got %.2f", i, r.Name, r.Area)
		}

		if err := r.Position.validate(seen, r.Name); err != nil {
			return fmt.Errorf("rooms[%d] %q: position: %w", i, r.Name, err)
		}
	}

	if c.EntryRoom == "" {
		return fmt.Errorf("entry_room must not be empty")
	}
	if !seen[c.EntryRoom] {
		return fmt.Errorf("entry_room %q does not name a configured room", c.EntryRoom)
	}

	return nil
}

// validate checks one room's position spec. placedSoFar includes the
// room's own name (already added by the caller before this is invoked),
// so a relative reference naming itself is still rejected by the
// RelativeTo-must-precede-self check below.
func (p PositionConfig) validate(placedSoFar map[string]bool, selfName string) error {
	switch p.Kind {
	case "", "auto":
		if p.PreferredDirection != "" {
			if _, ok := parseDirection(p.PreferredDirection); !ok {
				return fmt.Errorf("preferred_direction: unrecognised value %q", p.PreferredDirection)
			}
		}
	case "absolute":
	case "relative":
		if p.RelativeTo == "" {
			return fmt.Errorf("relative_to must be set for a relative position")
		}
		if p.RelativeTo == selfName || !placedSoFar[p.RelativeTo] {
			return fmt.Errorf("relative_to %q must name an earlier room in the program", p.RelativeTo)
		}
		if _, ok := parseDirection(p.Direction); !ok {
			return fmt.Errorf("direction: unrecognised value %q", p.Direction)
		}
	default:
		return fmt.Errorf("kind: unrecognised value %q (want absolute, relative, or auto)", p.Kind)
	}
	return nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic SHA-256 hash of the configuration's
// canonical YAML encoding. The core performs no seeded randomness, so
// this has no bearing on generation itself; it exists purely as a stable
// cache key a caller can use to memoize synthesis runs by config
// fingerprint.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.Sum256([]byte(c.EntryRoom))
		return h[:]
	}
	h := sha256.Sum256(data)
	return h[:]
}

func resolveFeel(name string) (circulation.Feel, bool) {
	switch name {
	case "cozy":
		return circulation.Cozy, true
	case "comfortable", "":
		return circulation.Comfortable, true
	case "spacious":
		return circulation.Spacious, true
	default:
		return 0, false
	}
}

func parseDirection(name string) (placement.Direction, bool) {
	switch name {
	case "N", "n", "north":
		return placement.North, true
	case "S", "s", "south":
		return placement.South, true
	case "E", "e", "east":
		return placement.East, true
	case "W", "w", "west":
		return placement.West, true
	default:
		return 0, false
	}
}

// toPositionSpec converts a validated PositionConfig into a
// placement.PositionSpec.
func (p PositionConfig) toPositionSpec() placement.PositionSpec {
	switch p.Kind {
	case "absolute":
		return placement.Absolute(p.X, p.Y)
	case "relative":
		dir, _ := parseDirection(p.Direction)
		return placement.Relative(dir, p.RelativeTo, p.Gap)
	default:
		if p.PreferredDirection == "" {
			return placement.Auto(nil)
		}
		dir, _ := parseDirection(p.PreferredDirection)
		return placement.Auto(&dir)
	}
}
