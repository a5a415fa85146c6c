package fs

import (
	"math"
	"math/bits"
	"regexp"
	"strconv"
)

// FileFilter decides which entries are printed.
type FileFilter struct {
	OnlyDirs    bool
	IncludeDirs bool
	Name        NameFilter
	Size        SizeFilter
}

// Match reports whether f passes every configured filter.
func (ff *FileFilter) Match(f *File) bool {
	if !ff.Name.Matches(f.Name) {
		return false
	}
	if ff.OnlyDirs && !f.IsDirectory() {
		return false
	}
	if !ff.OnlyDirs && !ff.IncludeDirs && f.IsDirectory() {
		return false
	}
	return ff.Size.Matches(f.Size())
}

// NameFilter matches file names against a regular expression. The zero
// value is unfiltered and matches every name.
type NameFilter struct {
	Regex *regexp.Regexp
}

// NewNameFilter compiles pattern.
func NewNameFilter(pattern string) (NameFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return NameFilter{}, err
	}
	return NameFilter{Regex: re}, nil
}

// IsUnfiltered reports whether no pattern is set
func (nf NameFilter) IsUnfiltered() bool { return nf.Regex == nil }

// Matches reports whether name is accepted.
func (nf NameFilter) Matches(name string) bool {
	return nf.Regex == nil || nf.Regex.MatchString(name)
}

// ComparisonSign is the prefix of a size expression.
type ComparisonSign int

const (
	// NoComparison marks an unfiltered SizeFilter.
	NoComparison ComparisonSign = iota
	Equal
	Inferior
	Superior
	SuperiorOrEqual
	InferiorOrEqual
)

// ParseComparisonSign recognizes exactly "=", "+", "-", "+=" and "-=".
func ParseComparisonSign(s string) (ComparisonSign, bool) {
	switch s {
	case "=":
		return Equal, true
	case "+":
		return Superior, true
	case "-":
		return Inferior, true
	case "+=":
		return SuperiorOrEqual, true
	case "-=":
		return InferiorOrEqual, true
	default:
		return NoComparison, false
	}
}

func (s ComparisonSign) String() string {
	switch s {
	case Equal:
		return "="
	case Inferior:
		return "-"
	case Superior:
		return "+"
	case SuperiorOrEqual:
		return "+="
	case InferiorOrEqual:
		return "-="
	default:
		return ""
	}
}

// SizeUnit is a byte multiplier selected by the last byte of a size
// expression.
type SizeUnit uint64

const (
	Byte     SizeUnit = 1
	Kibibyte SizeUnit = 1024
	Megabyte SizeUnit = 1024 * 1024
	Gibibyte SizeUnit = 1024 * 1024 * 1024
)

// ParseSizeUnit maps 'c', 'k', 'M' and 'G' to their unit.
func ParseSizeUnit(b byte) (SizeUnit, bool) {
	switch b {
	case 'c':
		return Byte, true
	case 'k':
		return Kibibyte, true
	case 'M':
		return Megabyte, true
	case 'G':
		return Gibibyte, true
	default:
		return 0, false
	}
}

// SizeFilter compares entry sizes with a byte count. The zero value is
// unfiltered.
type SizeFilter struct {
	Sign  ComparisonSign
	Bytes uint64
}

// IsUnfiltered reports whether no comparison is set
func (sf SizeFilter) IsUnfiltered() bool { return sf.Sign == NoComparison }

// Matches reports whether size satisfies the comparison.
func (sf SizeFilter) Matches(size uint64) bool {
	switch sf.Sign {
	case Equal:
		return size == sf.Bytes
	case Inferior:
		return size < sf.Bytes
	case Superior:
		return size > sf.Bytes
	case SuperiorOrEqual:
		return size >= sf.Bytes
	case InferiorOrEqual:
		return size <= sf.Bytes
	default:
		return true
	}
}

func (sf SizeFilter) String() string {
	if sf.IsUnfiltered() {
		return "unfiltered"
	}
	return sf.Sign.String() + strconv.FormatUint(sf.Bytes, 10) + "c"
}

// ParseSizeFilter reads expressions such as "+1024k", "-=500c" or "=10M".
//
// The sign is optional and defaults to Equal; "+=" and "-=" are tried before
// the one byte forms. A trailing unit byte scales the number. A number that
// does not parse counts as zero.
func ParseSizeFilter(expr string) SizeFilter {
	sign, rest := splitSign(expr)

	multiplier := SizeUnit(0)
	if len(rest) > 0 {
		if u, ok := ParseSizeUnit(rest[len(rest)-1]); ok {
			multiplier, rest = u, rest[:len(rest)-1]
		}
	}

	n, err := strconv.ParseUint(rest, 10, 64)
	if err != nil {
		n = 0
	}

	if multiplier != 0 {
		hi, lo := bits.Mul64(n, uint64(multiplier))
		if hi != 0 {
			lo = math.MaxUint64
		}
		n = lo
	}

	return SizeFilter{Sign: sign, Bytes: n}
}

// splitSign strips the longest recognized sign prefix from expr.
func splitSign(expr string) (ComparisonSign, string) {
	for _, n := range []int{2, 1} {
		if len(expr) < n {
			continue
		}
		if sign, ok := ParseComparisonSign(expr[:n]); ok {
			return sign, expr[n:]
		}
	}
	return Equal, expr
}
