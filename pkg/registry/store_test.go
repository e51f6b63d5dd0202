package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/eriksync/pkg/errors"
	"github.com/arthur-debert/eriksync/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveThenLoad(t *testing.T) {
	for _, format := range Formats {
		t.Run(format.String(), func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			require.NoError(t, fsys.MkdirAll("/cfg", 0755))
			path := "/cfg/eriksync" + format.Ext()

			original := sampleRegistry()
			require.NoError(t, original.Save(fsys, path, format))

			loaded, err := Load(fsys, path)
			require.NoError(t, err)
			assert.Equal(t, original.Nodes(), loaded.Nodes())
			assert.Equal(t, original.Targets(), loaded.Targets())
		})
	}
}

func TestSaveLoadSaveIsStable(t *testing.T) {
	for _, format := range Formats {
		t.Run(format.String(), func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			path := "/eriksync" + format.Ext()

			require.NoError(t, sampleRegistry().Save(fsys, path, format))
			first, err := afero.ReadFile(fsys, path)
			require.NoError(t, err)

			loaded, err := Load(fsys, path)
			require.NoError(t, err)
			require.NoError(t, loaded.Save(fsys, path, format))

			second, err := afero.ReadFile(fsys, path)
			require.NoError(t, err)
			assert.Equal(t, string(first), string(second))
		})
	}
}

func TestSaveOverwritesAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fsys := afero.NewOsFs()
	path := filepath.Join(dir, "eriksync.yaml")

	r := New()
	r.AddNode(types.NewNode("vm1").WithDescription("first"))
	require.NoError(t, r.Save(fsys, path, FormatYAML))

	r.AddNode(types.NewNode("vm1").WithDescription("second"))
	require.NoError(t, r.Save(fsys, path, FormatYAML))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "eriksync.yaml", entries[0].Name())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	loaded, err := Load(fsys, path)
	require.NoError(t, err)
	node, _ := loaded.GetNode("vm1")
	assert.Equal(t, "second", node.Description)
}

func TestSaveWritesThroughSymlink(t *testing.T) {
	dir := t.TempDir()
	fsys := afero.NewOsFs()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dotfiles"), 0755))
	target := filepath.Join(dir, "dotfiles", "eriksync.yaml")
	link := filepath.Join(dir, "eriksync.yaml")
	require.NoError(t, New().Save(fsys, target, FormatYAML))
	require.NoError(t, os.Symlink(filepath.Join("dotfiles", "eriksync.yaml"), link))

	r, err := Load(fsys, link)
	require.NoError(t, err)
	r.AddNode(types.NewNode("vm1").WithDescription("lab"))
	require.NoError(t, r.Save(fsys, link, FormatYAML))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "link was replaced by a regular file")

	loaded, err := Load(fsys, target)
	require.NoError(t, err)
	assert.Equal(t, []string{"vm1"}, loaded.NodeNames())

	entries, err := os.ReadDir(filepath.Join(dir, "dotfiles"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveKeepsExistingMode(t *testing.T) {
	fsys := afero.NewOsFs()
	path := filepath.Join(t.TempDir(), "eriksync.yaml")
	require.NoError(t, New().Save(fsys, path, FormatYAML))
	require.NoError(t, os.Chmod(path, 0600))

	r := New()
	r.AddNode(types.NewNode("vm1"))
	require.NoError(t, r.Save(fsys, path, FormatYAML))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSaveSymlinkLoop(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.Symlink(b, a))
	require.NoError(t, os.Symlink(a, b))

	err := New().Save(afero.NewOsFs(), a, FormatYAML)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite), "got %v", err)
}

func TestSaveToMissingDirectory(t *testing.T) {
	fsys := afero.NewOsFs()
	path := filepath.Join(t.TempDir(), "missing", "eriksync.yaml")

	err := New().Save(fsys, path, FormatYAML)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileCreate), "got %v", err)
	assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
}

func TestSaveToReadOnlyFs(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := New().Save(fsys, "/eriksync.yaml", FormatYAML)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileCreate), "got %v", err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/nowhere/eriksync.yaml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound), "got %v", err)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/eriksync.ini", []byte("nodes = {}"), 0644))

	_, err := Load(fsys, "/eriksync.ini")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse), "got %v", err)
}

func TestLoadMalformedContent(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/eriksync.json", []byte("{not json"), 0644))

	r, err := Load(fsys, "/eriksync.json")
	assert.Nil(t, r)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse), "got %v", err)
	assert.Equal(t, "/eriksync.json", errors.GetErrorDetails(err)["path"])
	assert.Equal(t, 1, strings.Count(err.Error(), "[CONFIG_PARSE]"), err.Error())
	assert.Contains(t, err.Error(), "invalid json config file /eriksync.json")
}

func TestLoadYmlExtension(t *testing.T) {
	fsys := afero.NewMemMapFs()
	content := "nodes:\n  vm1:\n    description: lab\ntargets:\n  docs:\n    path: ~/docs\n"
	require.NoError(t, afero.WriteFile(fsys, "/eriksync.yml", []byte(content), 0644))

	r, err := Load(fsys, "/eriksync.yml")
	require.NoError(t, err)
	assert.Equal(t, []types.Node{{Name: "vm1", Description: "lab"}}, r.Nodes())
	assert.Equal(t, []types.Target{{Name: "docs", Path: "~/docs"}}, r.Targets())
}
