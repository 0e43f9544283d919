// Package assets loads optional media files (music) from an asset
// directory. A missing directory or file is never fatal: callers get an
// error wrapping ErrUnavailable and carry on without the asset.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnavailable is wrapped by every load failure.
var ErrUnavailable = errors.New("assets: unavailable")

// Music is the background track looked up by the player shell.
const Music = "music.mp3"

// Loader reads asset files from one directory.
type Loader struct {
	root string
	fsys fs.FS
}

// NewLoader creates a loader for dir. A leading ~ expands to the home
// directory. An empty dir yields a loader where every asset is unavailable.
func NewLoader(dir string) *Loader {
	if dir == "" {
		return &Loader{}
	}
	if strings.HasPrefix(dir, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[1:])
		}
	}
	return &Loader{root: dir, fsys: os.DirFS(dir)}
}

// NewLoaderFS creates a loader over an arbitrary filesystem.
func NewLoaderFS(fsys fs.FS) *Loader {
	return &Loader{root: ".", fsys: fsys}
}

// Dir returns the directory assets are read from.
func (l *Loader) Dir() string {
	return l.root
}

// Load returns the bytes of the named asset.
func (l *Loader) Load(name string) ([]byte, error) {
	if l == nil || l.fsys == nil {
		return nil, fmt.Errorf("%w: %s: no asset directory", ErrUnavailable, name)
	}

	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, filepath.Join(l.root, name), err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s: empty file", ErrUnavailable, filepath.Join(l.root, name))
	}
	return data, nil
}
