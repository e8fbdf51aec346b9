package commands

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/phanxgames/willowxr"
)

func newOutput(w io.Writer, noColor bool) *termenv.Output {
	if noColor {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w)
}

// writeReport prints one block per snapshot. Held objects are highlighted
// by holder: green for the right hand, yellow when both hands are engaged.
func writeReport(w io.Writer, out *termenv.Output, script string, frames int, snaps []willowxr.Snapshot) {
	title := out.String(fmt.Sprintf("%s: %d frames, %d snapshots", script, frames, len(snaps))).Bold()
	fmt.Fprintln(w, title)
	for _, s := range snaps {
		scaling := ""
		if s.Scaling {
			scaling = out.String(" scaling").Foreground(out.Color("3")).String()
		}
		fmt.Fprintf(w, "\n[%s] frame %d%s\n", s.Label, s.Frame, scaling)
		if len(s.Objects) == 0 {
			fmt.Fprintln(w, out.String("  no objects").Faint())
			continue
		}
		for _, o := range s.Objects {
			line := fmt.Sprintf("  #%d pos=(%.3f, %.3f, %.3f) scale=%.3f held=%s",
				o.ID, o.Position[0], o.Position[1], o.Position[2], o.Scale, o.HeldBy)
			fmt.Fprintln(w, holderStyle(out, o.HeldBy, line))
		}
	}
}

func holderStyle(out *termenv.Output, heldBy, line string) termenv.Style {
	st := out.String(line)
	switch heldBy {
	case "right":
		return st.Foreground(out.Color("2"))
	case "both":
		return st.Foreground(out.Color("3")).Bold()
	case "left":
		return st.Foreground(out.Color("6"))
	}
	return st
}
