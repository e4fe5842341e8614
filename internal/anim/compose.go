package anim

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"navstack/internal/nav"
	"navstack/internal/textutil"
)

var faint = lipgloss.NewStyle().Faint(true)

// compose renders one transition frame: both renders are normalized to the
// host geometry, then combined according to the kind and progress p in
// [0, 1]. At p == 1 every kind resolves to the incoming frame.
func compose(outgoing, incoming string, kind nav.TransitionKind, p float64, width, height int) string {
	out := textutil.Frame(outgoing, width, height)
	in := textutil.Frame(incoming, width, height)

	switch kind {
	case nav.TransitionSlideLeft:
		return slideHorizontal(out, in, p, width, false)
	case nav.TransitionSlideRight:
		return slideHorizontal(out, in, p, width, true)
	case nav.TransitionSlideUp:
		off := offset(p, height)
		return strings.Join(append(out[off:], in[:off]...), "\n")
	case nav.TransitionSlideDown:
		off := offset(p, height)
		return strings.Join(append(append([]string{}, in[height-off:]...), out[:height-off]...), "\n")
	case nav.TransitionFade:
		if p < 0.5 {
			return faint.Render(strings.Join(out, "\n"))
		}
		return faint.Render(strings.Join(in, "\n"))
	default:
		return strings.Join(in, "\n")
	}
}

// slideHorizontal moves the incoming frame in from the right (or, when
// fromLeft, from the left) while the outgoing frame exits the other way.
func slideHorizontal(out, in []string, p float64, width int, fromLeft bool) string {
	off := offset(p, width)
	lines := make([]string, len(out))
	for i := range out {
		if fromLeft {
			lines[i] = textutil.PadRight(textutil.CropLeft(in[i], width-off), off) +
				textutil.Clip(out[i], width-off)
		} else {
			lines[i] = textutil.PadRight(textutil.CropLeft(out[i], off), width-off) +
				textutil.Clip(in[i], off)
		}
	}
	return strings.Join(lines, "\n")
}

// offset converts progress to whole cells, clamped to [0, max].
func offset(p float64, max int) int {
	off := int(math.Round(p * float64(max)))
	if off < 0 {
		return 0
	}
	if off > max {
		return max
	}
	return off
}
