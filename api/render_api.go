package api

import (
	"strconv"
	"strings"

	mb "github.com/saeidalz13/shipkombat/models/battleship"
)

const (
	GlyphEmpty = "O"
	GlyphShip  = "■"
	GlyphHit   = "X"
	GlyphMiss  = "T"
)

func Glyph(state mb.PositionState) string {
	switch state {
	case mb.PositionStateShip:
		return GlyphShip
	case mb.PositionStateHit:
		return GlyphHit
	case mb.PositionStateMiss:
		return GlyphMiss
	default:
		return GlyphEmpty
	}
}

// RenderBoard draws a header of column indices followed by one
// line per row, each prefixed with its index.
func RenderBoard(view mb.BoardView) string {
	var sb strings.Builder

	sb.WriteString(" ")
	for i := range view {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(i + 1))
	}
	sb.WriteString("\n")

	for i, row := range view {
		sb.WriteString(strconv.Itoa(i + 1))
		for _, state := range row {
			sb.WriteString(" ")
			sb.WriteString(Glyph(state))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
