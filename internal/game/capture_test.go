package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureStrictInequality(t *testing.T) {
	tests := []struct {
		name        string
		placedTop   uint8
		defenderBot uint8
		captures    bool
	}{
		{"greater captures", 5, 3, true},
		{"equal defends", 3, 3, false},
		{"lower defends", 1, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(4)
			// defender directly above the placement at (1,0); its bottom
			// side faces the placed card's top side
			require.NoError(t, b.Place(1, 0, mustCard(t, 0, 0, tt.defenderBot, 0), "bob"))

			placed := mustCard(t, tt.placedTop, 0, 0, 0)
			got := Captures(&b, 1, 1, placed, "alice")
			if tt.captures {
				assert.Equal(t, []Coord{{X: 1, Y: 0}}, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

// Regression for the tie-break rule: top rank 1 against a neighbor whose
// bottom rank is 3 must not capture.
func TestCaptureExampleFromRules(t *testing.T) {
	b := NewBoard(4)
	require.NoError(t, b.Place(1, 0, mustCard(t, 0, 0, 3, 0), "bob"))

	placed := mustCard(t, 1, 5, 1, 5)
	assert.Empty(t, Captures(&b, 1, 1, placed, "alice"))
}

func TestCaptureIgnoresOwnAndEmptyCells(t *testing.T) {
	b := NewBoard(4)
	require.NoError(t, b.Place(1, 0, mustCard(t, 0, 0, 0, 0), "alice"))

	placed := mustCard(t, 9, 9, 9, 9)
	// only neighbor is friendly, the rest are empty
	assert.Empty(t, Captures(&b, 1, 1, placed, "alice"))
}

func TestCaptureIndependentDirections(t *testing.T) {
	b := NewBoard(4)
	// weak opposing cards left and right of (1,1)
	require.NoError(t, b.Place(0, 1, mustCard(t, 0, 2, 0, 0), "bob"))
	require.NoError(t, b.Place(2, 1, mustCard(t, 0, 0, 0, 2), "bob"))

	placed := mustCard(t, 0, 5, 0, 5)
	got := Captures(&b, 1, 1, placed, "alice")
	assert.ElementsMatch(t, []Coord{{X: 0, Y: 1}, {X: 2, Y: 1}}, got)
}

func TestCaptureCornerEvaluatesExistingNeighborsOnly(t *testing.T) {
	b := NewBoard(4)
	require.NoError(t, b.Place(1, 0, mustCard(t, 0, 0, 0, 1), "bob"))
	require.NoError(t, b.Place(0, 1, mustCard(t, 1, 0, 0, 0), "bob"))

	// placement at the (0,0) corner: only right and bottom neighbors exist
	placed := mustCard(t, 9, 5, 5, 9)
	got := Captures(&b, 0, 0, placed, "alice")
	assert.ElementsMatch(t, []Coord{{X: 1, Y: 0}, {X: 0, Y: 1}}, got)
}
