package fs

import (
	"os"
	"path/filepath"
)

// Dir is a directory whose entry names have been read.
type Dir struct {
	Path     string
	contents []string
}

// ReadDir lists path. Entries are kept in name order.
func ReadDir(path string) (*Dir, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	contents := make([]string, 0, len(entries))
	for _, entry := range entries {
		contents = append(contents, filepath.Join(path, entry.Name()))
	}
	return &Dir{Path: path, contents: contents}, nil
}

// Entry is a directory entry, or the error met while reading it.
type Entry struct {
	File *File
	Path string
	Err  error
}

// Files stats every entry of the directory. A failing entry does not stop
// the others from being read.
func (d *Dir) Files() []Entry {
	out := make([]Entry, 0, len(d.contents))
	for _, path := range d.contents {
		f, err := FromPath(path, d, filepath.Base(path))
		out = append(out, Entry{File: f, Path: path, Err: err})
	}
	return out
}

// Len returns the number of entries
func (d *Dir) Len() int { return len(d.contents) }
