package config

import (
	"errors"
	"fmt"
	"net"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateTVMaze(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if _, _, err := net.SplitHostPort(c.Paths.Bind); err != nil {
		return fmt.Errorf("paths.bind %q is not a host:port address: %w", c.Paths.Bind, err)
	}
	return nil
}

func (c *Config) validateTVMaze() error {
	if c.TVMaze.BaseURL == "" {
		return errors.New("tvmaze.base_url must be set")
	}
	if c.TVMaze.RequestTimeout <= 0 {
		return errors.New("tvmaze.request_timeout must be positive")
	}
	return nil
}
