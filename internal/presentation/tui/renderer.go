// Package tui renders play-by-play lines for the CLI, with colors when the
// terminal supports them.
package tui

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"

	"github.com/gridironlabs/gridiron/pkg/domain"
)

// Renderer colorizes play-by-play output. It detects the terminal's color
// profile once at construction.
type Renderer struct {
	out *termenv.Output
}

// NewRenderer builds a renderer for stdout.
func NewRenderer() *Renderer {
	return &Renderer{out: termenv.NewOutput(os.Stdout)}
}

// PlayLine renders one processed play. Scores come out green, turnovers red,
// rejections yellow.
func (r *Renderer) PlayLine(play domain.PlayResult, res domain.PipelineResult, state *domain.GameState) string {
	line := fmt.Sprintf("%-18s %s", fmt.Sprintf("%s/%s", play.Type, play.Outcome), state.Summary())

	switch {
	case !res.Success:
		return r.out.String("✗ " + line).Foreground(termenv.ANSIYellow).String()
	case res.Transition != nil && res.Transition.Base.Score != nil && res.Transition.Base.Score.Occurred:
		return r.out.String("● " + line).Foreground(termenv.ANSIGreen).String()
	case play.IsTurnover:
		return r.out.String("⊘ " + line).Foreground(termenv.ANSIRed).String()
	default:
		return "  " + line
	}
}

// Banner renders the pre-game header.
func (r *Renderer) Banner(gameID string, state *domain.GameState) string {
	title := fmt.Sprintf("── %s: %s vs %s ──", gameID, state.HomeTeamID, state.AwayTeamID)
	return r.out.String(title).Bold().String()
}

// FinalLine renders the post-game summary.
func (r *Renderer) FinalLine(summary string) string {
	return r.out.String(summary).Bold().String()
}
