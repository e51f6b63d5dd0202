package style

import (
	"errors"
	"os"
	"testing"

	"github.com/arthur-debert/eriksync/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestTextRenderer(t *testing.T) {
	r := NewRenderer(ModeText)

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name: "nodes",
			got: r.RenderNodes([]types.Node{
				types.NewNode("vm1").WithDescription("lab box"),
				types.NewNode("vm2"),
			}),
			expected: "vm1: lab box\nvm2: \n",
		},
		{
			name: "targets",
			got: r.RenderTargets([]types.Target{
				types.NewTarget("code", "~/code"),
				types.NewTarget("docs", "/srv/docs"),
			}),
			expected: "code: ~/code\ndocs: /srv/docs\n",
		},
		{name: "empty nodes", got: r.RenderNodes(nil), expected: ""},
		{name: "path", got: r.RenderPath("/tmp/x.yaml"), expected: "/tmp/x.yaml\n"},
		{name: "notice", got: r.RenderNotice("nothing to do"), expected: "nothing to do\n"},
		{name: "success", got: r.RenderSuccess("saved"), expected: "saved\n"},
		{name: "error", got: r.RenderError(errors.New("boom")), expected: "Error: boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestTerminalRendererKeepsContent(t *testing.T) {
	r := NewRenderer(ModeTerminal)
	assert.Equal(t, ModeTerminal, r.Mode())

	out := r.RenderNodes([]types.Node{types.NewNode("vm1").WithDescription("lab")})
	assert.Contains(t, out, "vm1")
	assert.Contains(t, out, ": lab")

	assert.Contains(t, r.RenderError(errors.New("boom")), "Error: boom")
}

func TestDetectMode(t *testing.T) {
	t.Run("explicit settings win", func(t *testing.T) {
		assert.Equal(t, ModeTerminal, DetectMode(nil, "always"))
		assert.Equal(t, ModeTerminal, DetectMode(nil, "ALWAYS"))
		assert.Equal(t, ModeText, DetectMode(os.Stdout, "never"))
	})

	t.Run("NO_COLOR disables auto", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, ModeText, DetectMode(os.Stdout, "auto"))
	})

	t.Run("non terminal output is plain", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		f, err := os.CreateTemp(t.TempDir(), "out")
		assert.NoError(t, err)
		defer func() { _ = f.Close() }()
		assert.Equal(t, ModeText, DetectMode(f, "auto"))
		assert.Equal(t, ModeText, DetectMode(nil, "auto"))
	})
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "text", ModeText.String())
	assert.Equal(t, "term", ModeTerminal.String())
}
