package main

import (
	"fmt"
	"os"
)

// Config carries the parsed command-line options through the pipeline. It
// is populated once at startup and never mutated afterwards.
type Config struct {
	RefPrefix    string
	CmpPrefix    string
	Directory    string
	OutputPath   string
	GenerateDiff bool
	DiffAmplify  float64
	ShowStats    bool
}

// Validate checks option consistency and that the screenshot directory
// exists. A missing directory is a configuration error that aborts the run
// before any processing.
func (c *Config) Validate() error {
	if c.RefPrefix == "" || c.CmpPrefix == "" {
		return fmt.Errorf("both a reference and a comparison prefix are required")
	}
	if c.DiffAmplify <= 0 {
		return fmt.Errorf("diff amplification must be positive, got %g", c.DiffAmplify)
	}

	info, err := os.Stat(c.Directory)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("directory not found: %s", c.Directory)
		}
		return fmt.Errorf("checking directory %s: %w", c.Directory, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", c.Directory)
	}
	return nil
}
