package options

// usage is printed when the user asks for help.
const usage = `Usage:
    search [options] [directories...]

META OPTIONS
    -h, --help          show this!
    -v, --version       show the version of search

FILTERING OPTIONS
    -n, --name          filter the files by name (regular expression)
    -s, --size          filter the files by size
    --include-dirs      include the directories in the search
    -d, --only-dirs     only search in the directories

SIZE EXPRESSIONS
    [sign]number[unit]
    sign: = (equal, default), + (greater), - (less), += or -= (or equal)
    unit: c (bytes), k (KiB), M (MiB), G (GiB)
    example: search -s +1024k
`

// HelpString is the deduced request for help.
type HelpString struct{}

// DeduceHelp reports a help request when --help was given at all.
func DeduceHelp(matches *MatchedFlags) (HelpString, bool) {
	return HelpString{}, matches.Count(Help) > 0
}

func (HelpString) String() string { return usage + "\n" }

// VersionString is the deduced request for the version banner.
type VersionString struct {
	Version string
}

// DeduceVersion reports a version request when --version was given at all.
func DeduceVersion(matches *MatchedFlags, version string) (VersionString, bool) {
	return VersionString{Version: version}, matches.Count(Version) > 0
}

func (v VersionString) String() string { return "search v" + v.Version + "\n" }
