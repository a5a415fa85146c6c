// Package theme decides how file names are coloured.
//
// There are two themes: the default one, which colours entries by kind and
// by extension, and the no-colour one used when the output is not a
// terminal or NO_COLOR is set.
package theme

import (
	"github.com/fatih/color"

	"github.com/dzonerzy/go-search/fs"
	searchio "github.com/dzonerzy/go-search/io"
)

// Theme gives the styles used to paint a file path.
type Theme interface {
	// File is the style of the file name itself.
	File(f *fs.File) *color.Color

	// Path is the style of the parent directories before the name.
	Path() *color.Color

	// ControlChar is the style of escaped control characters.
	ControlChar() *color.Color
}

// FileKinds holds one style per kind of entry.
type FileKinds struct {
	Normal      *color.Color
	Directory   *color.Color
	Symlink     *color.Color
	Pipe        *color.Color
	BlockDevice *color.Color
	CharDevice  *color.Color
	Socket      *color.Color
	Special     *color.Color
	Executable  *color.Color
}

// DefaultFileKinds is the palette of the default theme.
func DefaultFileKinds() FileKinds {
	return FileKinds{
		Normal:      enabled(color.New(color.Reset)),
		Directory:   enabled(color.New(color.FgBlue, color.Bold)),
		Symlink:     enabled(color.New(color.FgCyan)),
		Pipe:        enabled(color.New(color.FgYellow)),
		BlockDevice: enabled(color.New(color.FgYellow, color.Bold)),
		CharDevice:  enabled(color.New(color.FgYellow, color.Bold)),
		Socket:      enabled(color.New(color.FgRed, color.Bold)),
		Special:     enabled(color.New(color.FgYellow)),
		Executable:  enabled(color.New(color.FgGreen, color.Bold)),
	}
}

func enabled(c *color.Color) *color.Color {
	c.EnableColor()
	return c
}

type defaultTheme struct {
	kinds   FileKinds
	exts    FileColours
	control *color.Color
}

// DefaultTheme colours by kind; regular files are first looked up in exts.
func DefaultTheme(exts FileColours) Theme {
	if exts == nil {
		exts = NoFileColours{}
	}
	return &defaultTheme{
		kinds:   DefaultFileKinds(),
		exts:    exts,
		control: enabled(color.New(color.FgRed)),
	}
}

func (t *defaultTheme) File(f *fs.File) *color.Color {
	switch f.Type() {
	case fs.TypeDirectory:
		return t.kinds.Directory
	case fs.TypeLink:
		return t.kinds.Symlink
	case fs.TypePipe:
		return t.kinds.Pipe
	case fs.TypeSocket:
		return t.kinds.Socket
	case fs.TypeCharDevice:
		return t.kinds.CharDevice
	case fs.TypeBlockDevice:
		return t.kinds.BlockDevice
	case fs.TypeSpecial:
		return t.kinds.Special
	case fs.TypeFile:
	}
	if c, ok := t.exts.Colour(f); ok {
		return c
	}
	if f.IsExecutable() {
		return t.kinds.Executable
	}
	return t.kinds.Normal
}

func (t *defaultTheme) Path() *color.Color        { return t.kinds.Normal }
func (t *defaultTheme) ControlChar() *color.Color { return t.control }

type noColorTheme struct {
	plain *color.Color
}

// NoColorTheme paints nothing.
func NoColorTheme() Theme {
	plain := color.New()
	plain.DisableColor()
	return &noColorTheme{plain: plain}
}

func (t *noColorTheme) File(*fs.File) *color.Color { return t.plain }
func (t *noColorTheme) Path() *color.Color         { return t.plain }
func (t *noColorTheme) ControlChar() *color.Color  { return t.plain }

// For picks the theme matching the colour support of iom. mappings is the
// SEARCH_COLORS value; a malformed value is returned as an error together
// with a usable theme that ignores it.
func For(iom *searchio.IOManager, mappings string) (Theme, error) {
	if !iom.SupportsColor() {
		return NoColorTheme(), nil
	}
	exts, err := ParseExtensionMappings(mappings)
	if err != nil {
		return DefaultTheme(nil), err
	}
	return DefaultTheme(exts), nil
}
