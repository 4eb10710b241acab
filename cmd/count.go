package main

import (
	"fmt"
	"os"

	"github.com/peekline/peekline/inspect"
)

type CountCmd struct {
	Paths  []string `arg:"" required:"" help:"Files to count." type:"existingfile"`
	Config string   `help:"Path to a TOML options file." short:"c"`
}

func (c *CountCmd) Run() error {
	opts, err := loadOptions(c.Config)
	if err != nil {
		return err
	}
	for _, path := range c.Paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		stats, err := inspect.Scan(f, opts)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Println(stats.Format(path))
	}
	return nil
}
