package registry

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/eriksync/pkg/errors"
	"github.com/arthur-debert/eriksync/pkg/logging"
	"github.com/spf13/afero"
)

const (
	defaultFileMode = 0644

	// maxLinkDepth bounds symlink resolution so a loop fails instead of spinning
	maxLinkDepth = 40
)

// Load reads a registry file, inferring the format from its extension
func Load(fsys afero.Fs, path string) (*Registry, error) {
	logger := logging.GetLogger("registry").With().Str("path", path).Logger()

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "config file %s does not exist", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path).
			WithDetail("path", path)
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	doc, err := decode(format, data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid %s config file %s", format, path).
			WithDetail("path", path)
	}
	r := fromDocument(doc)

	logger.Debug().
		Str("format", format.String()).
		Int("nodes", r.nodes.Count()).
		Int("targets", r.targets.Count()).
		Msg("Registry loaded")

	return r, nil
}

// Save writes the registry to path. The content is written to a temporary
// file next to the destination and renamed over it, so readers never see a
// partial file. A symlinked path is followed, and an existing file keeps its
// permission bits.
func (r *Registry) Save(fsys afero.Fs, path string, format Format) error {
	logger := logging.GetLogger("registry").With().Str("path", path).Logger()

	data, err := r.Encode(format)
	if err != nil {
		return err
	}

	dest, err := resolveLinks(fsys, path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to resolve %s", path).
			WithDetail("path", path)
	}
	if dest != path {
		logger.Debug().Str("target", dest).Msg("Writing through symlink")
	}

	perm := os.FileMode(defaultFileMode)
	if info, err := fsys.Stat(dest); err == nil {
		perm = info.Mode().Perm()
	}

	dir, base := filepath.Split(dest)
	if dir == "" {
		dir = "."
	}

	tmp, err := afero.TempFile(fsys, dir, "."+base+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "failed to create %s", path).
			WithDetail("path", path)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = fsys.Remove(tmpName)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}
	if err := tmp.Close(); err != nil {
		_ = fsys.Remove(tmpName)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}
	if err := fsys.Chmod(tmpName, perm); err != nil {
		logger.Debug().Err(err).Msg("Could not set registry file mode")
	}
	if err := fsys.Rename(tmpName, dest); err != nil {
		_ = fsys.Remove(tmpName)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to replace %s", path).
			WithDetail("path", path)
	}

	logger.Debug().
		Str("format", format.String()).
		Int("bytes", len(data)).
		Msg("Registry saved")

	return nil
}

// resolveLinks follows symlinks at path on filesystems that expose them and
// returns the final destination, which may not exist yet.
func resolveLinks(fsys afero.Fs, path string) (string, error) {
	lstater, ok := fsys.(afero.Lstater)
	if !ok {
		return path, nil
	}
	reader, ok := fsys.(afero.LinkReader)
	if !ok {
		return path, nil
	}

	for i := 0; i < maxLinkDepth; i++ {
		info, lstatCalled, err := lstater.LstatIfPossible(path)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				return path, nil
			}
			return "", err
		}
		if !lstatCalled || info.Mode()&fs.ModeSymlink == 0 {
			return path, nil
		}

		link, err := reader.ReadlinkIfPossible(path)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(link) {
			link = filepath.Join(filepath.Dir(path), link)
		}
		path = link
	}
	return "", fmt.Errorf("too many levels of symbolic links at %s", path)
}
