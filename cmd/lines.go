package main

import (
	"fmt"
	"os"

	"github.com/peekline/peekline/inspect"
)

type LinesCmd struct {
	Path      string `arg:"" required:"" help:"File to print." type:"existingfile"`
	Config    string `help:"Path to a TOML options file." short:"c"`
	SkipBlank bool   `help:"Leave blank lines out of the listing."`
}

func (l *LinesCmd) Run() error {
	opts, err := loadOptions(l.Config)
	if err != nil {
		return err
	}
	if l.SkipBlank {
		opts.SkipBlank = true
	}
	f, err := os.Open(l.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	lines, err := inspect.Numbered(f, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", l.Path, err)
	}
	for _, line := range lines {
		fmt.Printf("%6d  %s\n", line.Number, line.Text)
	}
	return nil
}
