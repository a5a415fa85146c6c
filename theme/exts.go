package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gobwas/glob"

	"github.com/dzonerzy/go-search/fs"
)

// FileColours colours regular files by name.
type FileColours interface {
	Colour(f *fs.File) (*color.Color, bool)
}

// NoFileColours never colours a file.
type NoFileColours struct{}

func (NoFileColours) Colour(*fs.File) (*color.Color, bool) { return nil, false }

type mapping struct {
	pattern glob.Glob
	style   *color.Color
}

// ExtensionMappings colours files whose name matches a glob.
type ExtensionMappings struct {
	mappings []mapping
}

// ParseExtensionMappings reads a colon separated list of glob=SGR pairs,
// for example "*.go=32:*.md=1;33". An empty value gives no mappings.
func ParseExtensionMappings(value string) (*ExtensionMappings, error) {
	em := &ExtensionMappings{}
	if value == "" {
		return em, nil
	}

	for _, entry := range strings.Split(value, ":") {
		if entry == "" {
			continue
		}
		pattern, codes, ok := strings.Cut(entry, "=")
		if !ok || pattern == "" {
			return nil, fmt.Errorf("colour mapping %q: expected glob=codes", entry)
		}

		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("colour mapping %q: %w", entry, err)
		}

		attrs := make([]color.Attribute, 0, 2)
		for _, code := range strings.Split(codes, ";") {
			n, err := strconv.Atoi(code)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("colour mapping %q: bad code %q", entry, code)
			}
			attrs = append(attrs, color.Attribute(n))
		}

		em.Add(g, enabled(color.New(attrs...)))
	}
	return em, nil
}

// Add appends a mapping. Later mappings override earlier ones.
func (em *ExtensionMappings) Add(pattern glob.Glob, style *color.Color) {
	em.mappings = append(em.mappings, mapping{pattern: pattern, style: style})
}

// Len returns the number of mappings
func (em *ExtensionMappings) Len() int { return len(em.mappings) }

// Colour walks the mappings backwards so that the last matching one wins,
// like the last occurrence of a repeated flag does.
func (em *ExtensionMappings) Colour(f *fs.File) (*color.Color, bool) {
	for i := len(em.mappings) - 1; i >= 0; i-- {
		if em.mappings[i].pattern.Match(f.Name) {
			return em.mappings[i].style, true
		}
	}
	return nil, false
}
