package main

import (
	"fmt"

	"github.com/zeromicro/go-zero/core/conf"

	"github.com/joshvictor1024/mandelbands/pkg/types"
)

// Config is read from a YAML, JSON or TOML file. Missing keys take the
// defaults below.
type Config struct {
	Addr    string `json:",default=:8080"`
	Width   int    `json:",default=800"`
	Height  int    `json:",default=800"`
	Workers int    `json:",default=16"`
	Limit   int    `json:",default=255"`
	Gops    bool   `json:",optional"`
	Verbose bool   `json:",optional"`
}

// loadConfig reads path, or returns the defaults when path is empty.
func loadConfig(path string) (Config, error) {
	var c Config
	var err error
	if path == "" {
		err = conf.FillDefault(&c)
	} else {
		err = conf.Load(path, &c)
	}
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return c, c.validate()
}

func (c Config) bounds() types.Bounds {
	return types.Bounds{W: c.Width, H: c.Height}
}

func (c Config) validate() error {
	if err := c.bounds().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Limit < 1 {
		return fmt.Errorf("config: iteration limit must be positive, got %d", c.Limit)
	}
	return nil
}
