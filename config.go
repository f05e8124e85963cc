package suffixtree

import "fmt"

// Segmentation selects how texts are broken up into characters.
type Segmentation int8

const (
	// Runes treats every Unicode code point as a character (default).
	Runes Segmentation = iota
	// Graphemes treats every extended grapheme cluster (UAX#29) as a character.
	Graphemes
)

func (s Segmentation) String() string {
	switch s {
	case Runes:
		return "runes"
	case Graphemes:
		return "graphemes"
	}
	return fmt.Sprintf("Segmentation(%d)", int(s))
}

// Config configures a suffix tree builder.
//
// The zero value is a valid configuration: rune segmentation and no limit on
// text length.
type Config struct {
	// Segmentation selects characters to be runes or grapheme clusters.
	Segmentation Segmentation
	// MaxLength limits the number of characters of the (concatenated) text.
	// 0 means unlimited.
	MaxLength int
}

func (cfg Config) normalized() Config {
	if cfg.MaxLength < 0 {
		cfg.MaxLength = 0
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.Segmentation != Runes && cfg.Segmentation != Graphemes {
		return fmt.Errorf("%w: unknown segmentation %d", ErrInvalidConfig, cfg.Segmentation)
	}
	if cfg.MaxLength < 0 {
		return fmt.Errorf("%w: negative maximum length", ErrInvalidConfig)
	}
	return nil
}
