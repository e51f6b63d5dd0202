package rsync

import (
	"testing"

	"github.com/arthur-debert/eriksync/pkg/paths"
	"github.com/arthur-debert/eriksync/pkg/registry"
	"github.com/arthur-debert/eriksync/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *registry.Registry {
	r := registry.New()
	r.AddNode(types.NewNode("vm1").WithDescription("lab"))
	r.AddTarget(types.NewTarget("docs", "~/docs"))
	r.AddTarget(types.NewTarget("code", "~/code"))
	return r
}

func TestCompileAllUsesSortedTargets(t *testing.T) {
	t.Setenv(paths.EnvHome, "/home/bob")

	cmds := Compile(newTestRegistry(), "vm1", []string{"all"}, types.Push)

	require.Len(t, cmds, 2)
	assert.Equal(t, "vm1:~/code", cmds[0].Args[len(cmds[0].Args)-1])
	assert.Equal(t, "vm1:~/docs", cmds[1].Args[len(cmds[1].Args)-1])
}

func TestCompileAllIsCaseInsensitive(t *testing.T) {
	for _, sel := range []string{"ALL", "All", "aLL"} {
		t.Run(sel, func(t *testing.T) {
			assert.Len(t, Compile(newTestRegistry(), "vm1", []string{sel}, types.Pull), 2)
		})
	}
}

func TestCompileAllOnlyCountsAsFirstSelector(t *testing.T) {
	cmds := Compile(newTestRegistry(), "vm1", []string{"docs", "all"}, types.Push)
	require.Len(t, cmds, 1)
	assert.Equal(t, "vm1:~/docs", cmds[0].Args[5])
}

func TestCompileDropsUnknownTargets(t *testing.T) {
	r := registry.New()
	r.AddNode(types.NewNode("vm1"))
	r.AddTarget(types.NewTarget("docs", "~/docs"))

	cmds := Compile(r, "vm1", []string{"docs", "ghost"}, types.Push)
	assert.Len(t, cmds, 1)

	assert.Empty(t, Compile(r, "vm1", []string{"ghost"}, types.Push))
}

func TestCompilePreservesCallerOrder(t *testing.T) {
	cmds := Compile(newTestRegistry(), "vm1", []string{"docs", "code", "docs"}, types.Push)

	require.Len(t, cmds, 3)
	assert.Equal(t, "vm1:~/docs", cmds[0].Args[5])
	assert.Equal(t, "vm1:~/code", cmds[1].Args[5])
	assert.Equal(t, "vm1:~/docs", cmds[2].Args[5])
}

func TestCompileUnknownNode(t *testing.T) {
	r := newTestRegistry()
	assert.Empty(t, Compile(r, "ghost", []string{"all"}, types.Push))
	assert.Empty(t, Compile(r, "ghost", []string{"docs"}, types.Pull))
}

func TestCompileEmptySelection(t *testing.T) {
	assert.Empty(t, Compile(newTestRegistry(), "vm1", nil, types.Push))
	assert.Empty(t, Compile(newTestRegistry(), "vm1", []string{}, types.Push))
}

func TestCompileDirections(t *testing.T) {
	t.Setenv(paths.EnvHome, "/home/bob")
	r := registry.New()
	r.AddNode(types.NewNode("vm1"))
	r.AddTarget(types.NewTarget("docs", "~/docs"))

	push := Compile(r, "vm1", []string{"docs"}, types.Push)
	require.Len(t, push, 1)
	assert.Equal(t, Command{
		Executable: "rsync",
		Args:       []string{"-avzHSP", "--delete", "-e", "ssh", "/home/bob/docs", "vm1:~/docs"},
	}, push[0])

	pull := Compile(r, "vm1", []string{"docs"}, types.Pull)
	require.Len(t, pull, 1)
	assert.Equal(t, Command{
		Executable: "rsync",
		Args:       []string{"-avzHSP", "--delete", "-e", "ssh", "vm1:~/docs", "/home/bob/docs"},
	}, pull[0])
}

func TestCompileWithoutHome(t *testing.T) {
	t.Setenv(paths.EnvHome, "")

	cmds := Compile(newTestRegistry(), "vm1", []string{"docs"}, types.Push)
	require.Len(t, cmds, 1)
	assert.Equal(t, "/docs", cmds[0].Args[4])
}
