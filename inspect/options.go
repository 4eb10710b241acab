package inspect

import (
	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Options controls how input is scanned.
type Options struct {
	// BufferSize is the decode buffer size, in bytes, of the character
	// source backing each scan.
	BufferSize int `toml:"buffer_size" validate:"gte=1"`
	// MaxLookAhead bounds the non-destructive window peeked at the head
	// of the input before any character is consumed.
	MaxLookAhead int `toml:"max_lookahead" validate:"gte=1"`
	// SkipBlank leaves blank lines out of line counts and listings.
	SkipBlank bool `toml:"skip_blank"`
}

// DefaultOptions returns the options used when no config file is given.
func DefaultOptions() Options {
	return Options{
		BufferSize:   4096,
		MaxLookAhead: 64,
	}
}

// ParseOptions decodes a TOML options document and validates it.
// Fields absent from the document keep their defaults.
func ParseOptions(tomlContent string) (Options, error) {
	opts := DefaultOptions()
	if _, err := toml.Decode(tomlContent, &opts); err != nil {
		return opts, err
	}
	validate := validator.New()
	if err := validate.Struct(opts); err != nil {
		return opts, err
	}
	return opts, nil
}
