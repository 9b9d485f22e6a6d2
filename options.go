package matfmt

const (
	// DefaultDecimals is the fraction-digit count used by the display
	// formats when no override is given.
	DefaultDecimals = 3

	// Shortest selects the shortest decimal rendering that parses back to
	// the exact value. It is the default for the data formats so written
	// files round-trip without loss.
	Shortest = -1

	// DefaultSeparator sits between columns in Auto, Fixed, Scaled, and
	// Pretty output.
	DefaultSeparator = "  "
)

// Option adjusts rendering behavior. Options apply uniformly across
// formats; a format that has no use for a given knob ignores it.
type Option func(*config)

type config struct {
	decimals    int
	decimalsSet bool
	separator   string
	brackets    BracketStyle
}

func newConfig(opts ...Option) config {
	cfg := config{
		decimals:  DefaultDecimals,
		separator: DefaultSeparator,
		brackets:  BracketSquare,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// displayDecimals is the precision for the aligned display formats.
func (c config) displayDecimals() int {
	return c.decimals
}

// dataDecimals is the precision for Plain, CSV, TSV, and Save. Unless the
// caller asked for a specific count, entries render with [Shortest] so a
// later Load reproduces them exactly.
func (c config) dataDecimals() int {
	if c.decimalsSet {
		return c.decimals
	}
	return Shortest
}

// WithDecimals fixes the number of fraction digits. Pass [Shortest] for
// the minimal exact rendering.
func WithDecimals(n int) Option {
	return func(c *config) {
		c.decimals = n
		c.decimalsSet = true
	}
}

// WithSeparator replaces the string between columns in the aligned
// display formats. Plain keeps its single-space join so written files
// stay loadable.
func WithSeparator(sep string) Option {
	return func(c *config) {
		c.separator = sep
	}
}

// WithBrackets selects the rail style used by [Pretty].
func WithBrackets(style BracketStyle) Option {
	return func(c *config) {
		c.brackets = style
	}
}
