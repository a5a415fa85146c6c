// Package search walks the requested directories and prints the files that
// pass the filter.
package search

import (
	"io"

	"github.com/dzonerzy/go-search/fs"
	searchio "github.com/dzonerzy/go-search/io"
	"github.com/dzonerzy/go-search/options"
	"github.com/dzonerzy/go-search/output"
	"github.com/dzonerzy/go-search/theme"
)

// Search is one run over a set of directories.
type Search struct {
	// InputPaths are the free arguments, "." when none were given.
	InputPaths []string

	Options *options.Options

	Writer io.Writer
	Theme  theme.Theme
	Logger *searchio.Logger
}

// Run searches every input path breadth first and returns the exit status.
// The error is only set when writing the results failed.
func (s *Search) Run() (int, error) {
	status := ExitSuccess
	queue := make([]*fs.Dir, 0, len(s.InputPaths))

	for _, path := range s.InputPaths {
		f, err := fs.FromPath(path, nil, "")
		if err != nil {
			s.Logger.Error("%s: %v", path, err)
			status = ExitRuntimeError
			continue
		}
		if !f.IsDirectory() {
			s.Logger.Error("%s: not a directory", path)
			status = ExitNotDirectory
			continue
		}
		d, err := f.ToDir()
		if err != nil {
			s.Logger.Error("%s: %v", path, err)
			status = ExitRuntimeError
			continue
		}
		queue = append(queue, d)
	}

	for len(queue) > 0 {
		d := queue[0]
		queue = queue[1:]
		s.Logger.Debug("reading %s (%d entries)", d.Path, d.Len())

		matched := make([]*fs.File, 0, d.Len())
		for _, entry := range d.Files() {
			if entry.Err != nil {
				s.Logger.Error("%s: %v", entry.Path, entry.Err)
				status = ExitRuntimeError
				continue
			}

			if entry.File.IsDirectory() {
				sub, err := entry.File.ToDir()
				if err != nil {
					s.Logger.Error("%s: %v", entry.Path, err)
					status = ExitRuntimeError
				} else {
					queue = append(queue, sub)
				}
			}

			if s.Options.Filter.Match(entry.File) {
				matched = append(matched, entry.File)
			}
		}

		r := output.Render{Files: matched, Theme: s.Theme}
		if err := r.Render(s.Writer); err != nil {
			return ExitRuntimeError, err
		}
	}

	return status, nil
}
