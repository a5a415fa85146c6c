package options

import "os"

// Environment variables read by search.
const (
	EnvStrict = "SEARCH_STRICT"
	EnvColors = "SEARCH_COLORS"
	EnvDebug  = "SEARCH_DEBUG"
)

// Vars looks up environment variables. Tests substitute MapVars for the
// process environment.
type Vars interface {
	Get(name string) string
}

// OSVars reads the process environment.
type OSVars struct{}

func (OSVars) Get(name string) string { return os.Getenv(name) }

// MapVars is a fixed environment.
type MapVars map[string]string

func (m MapVars) Get(name string) string { return m[name] }

// StrictnessFrom returns ForbidRedundant when SEARCH_STRICT is set to a
// non-empty value.
func StrictnessFrom(vars Vars) Strictness {
	if vars.Get(EnvStrict) != "" {
		return ForbidRedundant
	}
	return UseLastArgument
}
