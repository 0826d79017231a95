package export

import (
	"encoding/json"
	"os"

	"github.com/arxflow/floorplan/pkg/floorplan"
)

// ExportJSON serializes the complete artifact to JSON with indentation.
func ExportJSON(art *floorplan.Artifact) ([]byte, error) {
	return json.MarshalIndent(art, "", "  ")
}

// ExportJSONCompact serializes the artifact to JSON without indentation,
// suitable for storage or transmission.
func ExportJSONCompact(art *floorplan.Artifact) ([]byte, error) {
	return json.Marshal(art)
}

// SaveJSONToFile exports the artifact to an indented JSON file.
func SaveJSONToFile(art *floorplan.Artifact, path string) error {
	data, err := ExportJSON(art)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SaveJSONCompactToFile exports the artifact to a compact JSON file.
func SaveJSONCompactToFile(art *floorplan.Artifact, path string) error {
	data, err := ExportJSONCompact(art)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
