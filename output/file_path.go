// Package output renders matched files, one path per line.
package output

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/fatih/color"

	"github.com/dzonerzy/go-search/fs"
	"github.com/dzonerzy/go-search/internal/pool"
	"github.com/dzonerzy/go-search/theme"
)

// FilePath paints the full path of a file: its parent directories, then
// its name in the style the theme gives it.
func FilePath(f *fs.File, t theme.Theme) string {
	b := pool.GetBuffer()
	defer pool.PutBuffer(b)

	if parent := parentPath(f); parent != "" {
		if parent == string(filepath.Separator) {
			b.WriteString(t.Path().Sprint(parent))
		} else {
			escape(b, parent, t.Path(), t.ControlChar())
			b.WriteString(t.Path().Sprint(string(filepath.Separator)))
		}
	}

	if f.Name != "" {
		escape(b, f.Name, t.File(f), t.ControlChar())
	}

	return b.String()
}

// parentPath returns the directory part to print before the name. Paths
// given without any directory have none.
func parentPath(f *fs.File) string {
	if f.ParentDir != nil {
		return f.ParentDir.Path
	}
	if !strings.ContainsRune(f.Path, filepath.Separator) {
		return ""
	}
	return filepath.Dir(f.Path)
}

// escape writes s in style, replacing control characters with their
// escaped form in the control style.
func escape(b *bytes.Buffer, s string, style, control *color.Color) {
	if strings.IndexFunc(s, unicode.IsControl) < 0 {
		b.WriteString(style.Sprint(s))
		return
	}

	start := 0
	for i, r := range s {
		if !unicode.IsControl(r) {
			continue
		}
		if start < i {
			b.WriteString(style.Sprint(s[start:i]))
		}
		quoted := strconv.QuoteRune(r)
		b.WriteString(control.Sprint(quoted[1 : len(quoted)-1]))
		start = i + len(string(r))
	}
	if start < len(s) {
		b.WriteString(style.Sprint(s[start:]))
	}
}
