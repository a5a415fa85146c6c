package output

import (
	"fmt"
	"io"

	"github.com/dzonerzy/go-search/fs"
	"github.com/dzonerzy/go-search/theme"
)

// Render writes one line per file.
type Render struct {
	Files []*fs.File
	Theme theme.Theme
}

// Render stops at the first write error.
func (r *Render) Render(w io.Writer) error {
	for _, f := range r.Files {
		if _, err := fmt.Fprintln(w, FilePath(f, r.Theme)); err != nil {
			return err
		}
	}
	return nil
}
