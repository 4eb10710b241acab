package main

import (
	"os"

	"github.com/peekline/peekline/inspect"
)

// loadOptions reads an options file when one is given, otherwise falls
// back to the defaults.
func loadOptions(path string) (inspect.Options, error) {
	if path == "" {
		return inspect.DefaultOptions(), nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return inspect.Options{}, err
	}
	return inspect.ParseOptions(string(content))
}
