package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, Music), []byte("ID3"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "empty.mp3"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(dir)
	if l.Dir() != dir {
		t.Errorf("Dir() = %q, expected %q", l.Dir(), dir)
	}

	data, err := l.Load(Music)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(data) != "ID3" {
		t.Errorf("Load() = %q, expected ID3", data)
	}

	tests := []struct {
		name   string
		loader *Loader
		file   string
		notExt bool
	}{
		{"missing file", l, "font.ttf", true},
		{"empty file", l, "empty.mp3", false},
		{"no directory", NewLoader(""), Music, false},
		{"nil loader", nil, Music, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.loader.Load(tt.file)
			if !errors.Is(err, ErrUnavailable) {
				t.Errorf("Load(%q) error = %v, expected ErrUnavailable", tt.file, err)
			}
			if tt.notExt && !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("Load(%q) error = %v, expected to wrap fs.ErrNotExist", tt.file, err)
			}
		})
	}
}

func TestLoaderFS(t *testing.T) {
	l := NewLoaderFS(fstest.MapFS{
		Music: &fstest.MapFile{Data: []byte{1, 2, 3}},
	})

	data, err := l.Load(Music)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(data) != 3 {
		t.Errorf("len(Load()) = %d, expected 3", len(data))
	}
}

func TestLoaderExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	l := NewLoader("~/assets")
	if l.Dir() != filepath.Join(home, "assets") {
		t.Errorf("Dir() = %q, expected under HOME", l.Dir())
	}
}
