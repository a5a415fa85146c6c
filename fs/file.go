// Package fs holds the file records walked by search and the filters
// applied to them.
package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// Type is the kind of a file system entry.
type Type int

const (
	TypeFile Type = iota
	TypeDirectory
	TypeLink
	TypePipe
	TypeSocket
	TypeCharDevice
	TypeBlockDevice
	TypeSpecial
)

// IsRegularFile reports whether t is a plain file
func (t Type) IsRegularFile() bool { return t == TypeFile }

// File is one entry found while searching.
type File struct {
	// Name is the last path component, as displayed.
	Name string

	// Ext is the lowercase extension without the dot, "" when there is none.
	Ext string

	Path string

	// Info comes from lstat, so links describe themselves.
	Info os.FileInfo

	// ParentDir is nil for paths given on the command line.
	ParentDir *Dir
}

// FromPath lstats path and builds its File. An empty name is derived from
// the path.
func FromPath(path string, parent *Dir, name string) (*File, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = Filename(path)
	}
	return &File{
		Name:      name,
		Ext:       Ext(name),
		Path:      path,
		Info:      info,
		ParentDir: parent,
	}, nil
}

// Filename returns the last component of path
func Filename(path string) string {
	return filepath.Base(path)
}

// Ext returns the lowercase text after the last dot of name
func Ext(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// ToDir reads the directory this file points to.
func (f *File) ToDir() (*Dir, error) {
	return ReadDir(f.Path)
}

// Type classifies the entry from its mode bits.
func (f *File) Type() Type {
	mode := f.Info.Mode()
	switch {
	case mode.IsRegular():
		return TypeFile
	case mode.IsDir():
		return TypeDirectory
	case mode&os.ModeSymlink != 0:
		return TypeLink
	case mode&os.ModeNamedPipe != 0:
		return TypePipe
	case mode&os.ModeSocket != 0:
		return TypeSocket
	case mode&os.ModeCharDevice != 0:
		return TypeCharDevice
	case mode&os.ModeDevice != 0:
		return TypeBlockDevice
	default:
		return TypeSpecial
	}
}

func (f *File) IsDirectory() bool { return f.Info.IsDir() }
func (f *File) IsFile() bool      { return f.Info.Mode().IsRegular() }

// IsExecutable reports whether a regular file has any execute bit set.
func (f *File) IsExecutable() bool {
	return f.IsFile() && f.Info.Mode().Perm()&0o111 != 0
}

// Size returns the entry size in bytes.
func (f *File) Size() uint64 {
	if size := f.Info.Size(); size > 0 {
		return uint64(size)
	}
	return 0
}
