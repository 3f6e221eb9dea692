package patalg

// ParseConfig holds the feature toggles ParsePattern consults while
// scanning a pattern. Every feature defaults to enabled except
// swapSlashes, which mirrors the teacher library's Windows-aware default.
type ParseConfig struct {
	allowEscaping    bool
	allowQuestion    bool
	allowStar        bool
	allowDoubleStar  bool
	allowAlternation bool
	allowCharClass   bool
	swapSlashes      bool
	expandTilde      bool
}

var defaultParseConfig = ParseConfig{
	allowEscaping:    true,
	allowQuestion:    true,
	allowStar:        true,
	allowDoubleStar:  true,
	allowAlternation: true,
	allowCharClass:   true,
	swapSlashes:      false,
	expandTilde:      true,
}

// ParseOption functions optionally alter how patterns are parsed.
type ParseOption = func(*ParseConfig)

// AllowEscaping changes how the escape character is parsed. If disabled,
// a backslash is a literal character. Enabled by default.
func AllowEscaping(enable bool) ParseOption {
	return func(c *ParseConfig) { c.allowEscaping = enable }
}

// AllowQuestion changes how ? is parsed. If disabled, ? is a literal
// character. Enabled by default.
func AllowQuestion(enable bool) ParseOption {
	return func(c *ParseConfig) { c.allowQuestion = enable }
}

// AllowStar changes how * is parsed. If disabled, * is a literal character,
// and ** never becomes a globstar regardless of AllowDoubleStar. Enabled
// by default.
func AllowStar(enable bool) ParseOption {
	return func(c *ParseConfig) { c.allowStar = enable }
}

// AllowDoubleStar changes whether a whole segment of ** is parsed as a
// globstar; it only applies when AllowStar is also enabled. If disabled,
// ** is two ordinary star parts. Enabled by default.
func AllowDoubleStar(enable bool) ParseOption {
	return func(c *ParseConfig) { c.allowDoubleStar = enable }
}

// AllowAlternation changes whether {a,b,c} and {m..n} are expanded. If
// disabled, { and } are literal characters. Enabled by default.
func AllowAlternation(enable bool) ParseOption {
	return func(c *ParseConfig) { c.allowAlternation = enable }
}

// AllowCharClass changes whether [...] denotes a character class. If
// disabled, [ and ] are literal characters. Enabled by default.
func AllowCharClass(enable bool) ParseOption {
	return func(c *ParseConfig) { c.allowCharClass = enable }
}

// ExpandTilde changes whether a leading ~ is treated as an absoluteness
// marker (spec.md §4: ~ expands to the home directory only for path input,
// never for pattern lexing). If disabled, ~ is a literal character.
// Enabled by default.
func ExpandTilde(enable bool) ParseOption {
	return func(c *ParseConfig) { c.expandTilde = enable }
}

// WithSwapSlashes changes how \ and / are interpreted in the source
// pattern: if enabled, / becomes the escape character and \ becomes the
// segment separator, matching a Windows path convention. Patterns are
// always normalized back to / as the separator before automaton
// construction. Disabled by default.
func WithSwapSlashes(enable bool) ParseOption {
	return func(c *ParseConfig) { c.swapSlashes = enable }
}
