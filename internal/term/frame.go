// Package term is the terminal front-end: a gocui view of the board with
// mouse editing, colored with aurora.
package term

import (
	"strings"

	"github.com/logrusorgru/aurora"

	"life-ca/pkg/life"
)

// Style holds the strings drawn for live and dead cells.
type Style struct {
	Live string
	Dead string
	au   aurora.Aurora
}

// NewStyle returns the cell style. Without colors, live cells are plain blocks.
func NewStyle(colors bool) Style {
	au := aurora.NewAurora(colors)
	return Style{
		Live: au.Green("█").BgGreen().String(),
		Dead: "░",
		au:   au,
	}
}

// Frame renders the part of g that fits in cols x rows characters, one
// character per cell, starting at origin.
func Frame(g *life.Grid, st Style, origin life.Coord, cols, rows int) string {
	var b strings.Builder
	for y := origin.Y; y < origin.Y+rows && y <= g.MaxY(); y++ {
		if y < 0 {
			continue
		}
		for x := origin.X; x < origin.X+cols && x <= g.MaxX(); x++ {
			if x < 0 {
				continue
			}
			if g.Alive(life.Coord{X: x, Y: y}) {
				b.WriteString(st.Live)
			} else {
				b.WriteString(st.Dead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Mode colors the running state label.
func (st Style) Mode(paused bool) string {
	if paused {
		return st.au.Colorize("paused", aurora.BlueFg).String()
	}
	return st.au.Colorize("running", aurora.CyanFg).String()
}

// Verdict colors the stagnation verdict.
func (st Style) Verdict(v life.Verdict) string {
	switch v {
	case life.Extinct:
		return st.au.Red(v.String()).String()
	case life.StillLife, life.Cycling:
		return st.au.Yellow(v.String()).String()
	default:
		return st.au.Green(v.String()).String()
	}
}
