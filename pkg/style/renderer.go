package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/eriksync/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Renderer formats registry listings and messages for the CLI
type Renderer struct {
	mode Mode
}

// NewRenderer creates a renderer for mode
func NewRenderer(mode Mode) *Renderer {
	return &Renderer{mode: mode}
}

// Mode returns the renderer's output mode
func (r *Renderer) Mode() Mode {
	return r.mode
}

func (r *Renderer) render(st lipgloss.Style, s string) string {
	if r.mode == ModeText {
		return s
	}
	return st.Render(s)
}

// RenderNodes renders one "name: description" line per node
func (r *Renderer) RenderNodes(nodes []types.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		fmt.Fprintf(&b, "%s: %s\n", r.render(NodeStyle, n.Name), n.Description)
	}
	return b.String()
}

// RenderTargets renders one "name: path" line per target
func (r *Renderer) RenderTargets(targets []types.Target) string {
	var b strings.Builder
	for _, t := range targets {
		fmt.Fprintf(&b, "%s: %s\n", r.render(TargetStyle, t.Name), r.render(PathStyle, t.Path))
	}
	return b.String()
}

// RenderPath renders a filesystem location
func (r *Renderer) RenderPath(path string) string {
	return r.render(PathStyle, path) + "\n"
}

// RenderNotice renders an informational one-liner such as "nothing to do"
func (r *Renderer) RenderNotice(msg string) string {
	if r.mode == ModeText {
		return msg + "\n"
	}
	return pterm.Info.Sprint(msg) + "\n"
}

// RenderSuccess renders a confirmation line
func (r *Renderer) RenderSuccess(msg string) string {
	return r.render(SuccessStyle, msg) + "\n"
}

// RenderError renders err as "Error: <message>"
func (r *Renderer) RenderError(err error) string {
	return r.render(ErrorStyle, "Error: "+err.Error()) + "\n"
}
