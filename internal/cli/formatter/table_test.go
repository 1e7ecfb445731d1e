package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "NAME"},
		[][]string{
			{"40-920", "Earth work"},
			{"K-01", "Excavation"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4) // header, separator, two rows
	assert.Contains(t, lines[2], "40-920")
	assert.Contains(t, lines[3], "K-01")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTable_ShortRowPadded(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{{"only"}})
	assert.Contains(t, out, "only")
}

func TestRenderProgress_Bounds(t *testing.T) {
	assert.Contains(t, RenderProgress(1.5, 10), "100%")
	assert.Contains(t, RenderProgress(-0.5, 10), "  0%")
	assert.Contains(t, RenderProgress(0.5, 10), " 50%")
}

func TestRenderBox_Title(t *testing.T) {
	out := RenderBox("Projects", "body")
	assert.Contains(t, out, "PROJECTS")
	assert.Contains(t, out, "body")
}
