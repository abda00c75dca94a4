package repline

import "fmt"

// Config is a serialisable representation of the engine configuration. It
// can be populated from JSON, YAML, environment variables, etc. The
// zero-value is not useful on its own; start from DefaultConfig.
type Config struct {
	// Width is the companion pane width in columns; it also sizes the
	// simulated terminal the interpreter runs under.
	Width int `json:"width" yaml:"width"`
	// AutoClose hides the companion when the source view loses focus and
	// destroys the session when the source view closes.
	AutoClose bool `json:"autoClose" yaml:"autoClose"`
	// Raw renders the reconciled transcript verbatim instead of scraping
	// one result line per statement.
	Raw bool `json:"raw" yaml:"raw"`
	// RightAlign pads result lines on the left so they end at the pane edge.
	RightAlign bool `json:"rightAlign" yaml:"rightAlign"`
	// RightSplit places the companion to the right of the source view.
	RightSplit bool `json:"rightSplit" yaml:"rightSplit"`
	// BaseTools are executables the engine itself depends on; when any is
	// absent every command is refused until the process restarts.
	BaseTools []string `json:"baseTools,omitempty" yaml:"baseTools,omitempty"`
	// InterpretersURL optionally points at a YAML document with extra
	// interpreter definitions merged over the built-in set at start-up.
	InterpretersURL string `json:"interpretersURL,omitempty" yaml:"interpretersURL,omitempty"`
}

// DefaultConfig returns the engine defaults. Callers may modify the
// returned struct before passing it to New via WithConfig.
func DefaultConfig() *Config {
	return &Config{
		Width:      40,
		AutoClose:  true,
		RightSplit: true,
		BaseTools:  []string{"sh", "env"},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Width <= 0 {
		return fmt.Errorf("width must be > 0")
	}
	return nil
}
