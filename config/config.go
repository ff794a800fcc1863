package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type (
	Head struct {
		// Default is the initial capacity of the buffer, accumulating the start line and
		// header lines of a single message.
		Default int `toml:"default"`
		// Maximal limits the total length of the start line and header lines, excluding
		// line terminators. Messages with larger heads are rejected. Zero means no limit.
		Maximal int `toml:"maximal" test:"nullable"`
	}

	Headers struct {
		// Prealloc is the number of distinct header names the storage is initially
		// allocated for.
		Prealloc int `toml:"prealloc"`
	}

	Request struct {
		// AlwaysDelimitBody makes the request encoder emit the blank line after headers
		// even if the body is empty, as the response encoder always does. Disabled by
		// default for compatibility.
		AlwaysDelimitBody bool `toml:"always_delimit_body" test:"nullable"`
	}
)

// Config holds limits and pre-allocations of the codecs. Always start from Default()
// instead of initializing the struct manually.
type Config struct {
	Head    Head    `toml:"head"`
	Headers Headers `toml:"headers"`
	Request Request `toml:"request"`
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Head: Head{
			Default: 1024,
			// unbounded
			Maximal: 0,
		},
		Headers: Headers{
			Prealloc: 10,
		},
		Request: Request{
			AlwaysDelimitBody: false,
		},
	}
}

// Load reads the TOML file, overriding defaults by values presented in it.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config invalid (%s): %w", path, err)
	}

	return cfg, nil
}

// Parse is the same as Load, but takes the TOML document directly.
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config parse failed: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Head.Default < 0:
		return fmt.Errorf("head.default must not be negative, got %d", c.Head.Default)
	case c.Head.Maximal < 0:
		return fmt.Errorf("head.maximal must not be negative, got %d", c.Head.Maximal)
	case c.Head.Maximal > 0 && c.Head.Default > c.Head.Maximal:
		return fmt.Errorf("head.default (%d) exceeds head.maximal (%d)", c.Head.Default, c.Head.Maximal)
	case c.Headers.Prealloc < 0:
		return fmt.Errorf("headers.prealloc must not be negative, got %d", c.Headers.Prealloc)
	}

	return nil
}
