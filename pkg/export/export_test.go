package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arxflow/floorplan/pkg/floorplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHouseYAML = `
footprint:
  width: 80
  depth: 60
stories: 1
feel: comfortable
entry_room: foyer
rooms:
  - name: foyer
    type: foyer
    area: 64
    position:
      kind: absolute
      x: 0
      y: 0
  - name: living
    type: living
    area: 168
    position:
      kind: relative
      direction: E
      relative_to: foyer
      gap: 0
  - name: bedroom-primary
    type: bedroom
    area: 182
    primary: true
    position:
      kind: relative
      direction: E
      relative_to: living
      gap: 0
  - name: bathroom-primary
    type: bathroom
    area: 70
    primary: true
    position:
      kind: relative
      direction: N
      relative_to: bedroom-primary
      gap: 0
`

func buildTestArtifact(t *testing.T) *floorplan.Artifact {
	t.Helper()
	cfg, err := floorplan.LoadConfigFromBytes([]byte(testHouseYAML))
	require.NoError(t, err)
	art, err := floorplan.Synthesize(context.Background(), cfg)
	require.NoError(t, err)
	return art
}

func TestExportJSONProducesValidJSON(t *testing.T) {
	art := buildTestArtifact(t)

	data, err := ExportJSON(art)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	var restored floorplan.Artifact
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Len(t, restored.Rooms, len(art.Rooms))
	assert.Equal(t, art.Reachability.AllReachable, restored.Reachability.AllReachable)
}

func TestExportJSONCompactIsSmaller(t *testing.T) {
	art := buildTestArtifact(t)

	compact, err := ExportJSONCompact(art)
	require.NoError(t, err)
	formatted, err := ExportJSON(art)
	require.NoError(t, err)

	assert.Less(t, len(compact), len(formatted))
}

func TestSaveJSONToFile(t *testing.T) {
	art := buildTestArtifact(t)
	path := filepath.Join(t.TempDir(), "artifact.json")

	require.NoError(t, SaveJSONToFile(art, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var restored floorplan.Artifact
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Len(t, restored.Rooms, len(art.Rooms))
}

func TestSaveJSONCompactToFile(t *testing.T) {
	art := buildTestArtifact(t)
	path := filepath.Join(t.TempDir(), "artifact.compact.json")

	require.NoError(t, SaveJSONCompactToFile(art, path))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestSaveJSONToFileInvalidPathFails(t *testing.T) {
	art := buildTestArtifact(t)
	err := SaveJSONToFile(art, "/nonexistent/directory/artifact.json")
	assert.Error(t, err)
}

func TestExportSVGProducesMarkup(t *testing.T) {
	art := buildTestArtifact(t)

	data, err := ExportSVG(art, DefaultSVGOptions())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), "</svg>")
}

func TestExportSVGRejectsNilArtifact(t *testing.T) {
	_, err := ExportSVG(nil, DefaultSVGOptions())
	assert.Error(t, err)
}

func TestExportSVGRejectsEmptyArtifact(t *testing.T) {
	_, err := ExportSVG(&floorplan.Artifact{}, DefaultSVGOptions())
	assert.Error(t, err)
}

func TestExportSVGFillsInZeroedOptions(t *testing.T) {
	art := buildTestArtifact(t)
	data, err := ExportSVG(art, SVGOptions{})
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestExportSVGLabelsEveryRoomName(t *testing.T) {
	art := buildTestArtifact(t)
	opts := DefaultSVGOptions()

	data, err := ExportSVG(art, opts)
	require.NoError(t, err)
	markup := string(data)
	for _, r := range art.Rooms {
		assert.Contains(t, markup, r.Name)
	}
}

func TestSaveSVGToFile(t *testing.T) {
	art := buildTestArtifact(t)
	path := filepath.Join(t.TempDir(), "floorplan.svg")

	require.NoError(t, SaveSVGToFile(art, path, DefaultSVGOptions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestCalculateTransformMapsBoundsIntoCanvas(t *testing.T) {
	art := buildTestArtifact(t)
	opts := DefaultSVGOptions()
	tf := calculateTransform(art, opts, 60)

	for _, r := range art.Rooms {
		x, y := tf.point(r.Bounds().Center())
		assert.GreaterOrEqual(t, x, 0)
		assert.LessOrEqual(t, x, opts.Width)
		assert.GreaterOrEqual(t, y, 0)
		assert.LessOrEqual(t, y, opts.Height)
	}
}
