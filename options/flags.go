package options

// Meta options
var (
	Version = &Arg{Short: 'v', Long: "version", TakesValue: Forbidden}
	Help    = &Arg{Short: 'h', Long: "help", TakesValue: Forbidden}
)

// Filtering options
var (
	Name        = &Arg{Short: 'n', Long: "name", TakesValue: Necessary}
	Size        = &Arg{Short: 's', Long: "size", TakesValue: Necessary, Values: Values{"+1024k", "-=500c", "=10M"}}
	IncludeDirs = &Arg{Long: "include-dirs", TakesValue: Forbidden}
	OnlyDirs    = &Arg{Short: 'd', Long: "only-dirs", TakesValue: Forbidden}
)

// AllArgs is the registry search parses its command line with.
var AllArgs = Args{
	Version, Help,

	Name, Size, IncludeDirs, OnlyDirs,
}
