package backend

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/odvcencio/tessera/pkg/compositor"
)

// ApplyPatch writes a compositor patch into a backend's cell buffer.
// The patch already contains only changed runs, so every SetContent
// call here is useful work. Callers still need Show to flush.
func ApplyPatch(b Backend, p compositor.Patch) {
	if p.Full {
		b.Clear()
	}

	for _, run := range p.Runs {
		x := run.X

		var (
			pending bool
			mainc   rune
			comb    []rune
			cellX   int
		)

		flush := func() {
			if pending {
				b.SetContent(cellX, run.Y, mainc, comb, run.Style)
			}
		}

		g := uniseg.NewGraphemes(run.Text)
		for g.Next() {
			cluster := g.Runes()
			w := runewidth.StringWidth(g.Str())

			if w <= 0 {
				// Zero-width cluster rides along as combining input on
				// the previous cell.
				if pending {
					comb = append(comb, cluster...)
				}
				continue
			}

			flush()
			pending = true
			mainc = cluster[0]
			cellX = x
			comb = nil
			if len(cluster) > 1 {
				comb = append([]rune(nil), cluster[1:]...)
			}
			x += w
		}
		flush()
	}
}
