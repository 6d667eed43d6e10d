package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Streams are the two diagnostic channels: failures with their stack
// traces go to Err, remediation hints go to Info.
type Streams struct {
	Err  hclog.Logger
	Info hclog.Logger
}

// New returns streams writing to errOut and infoOut at the given level
// ("trace", "debug", "info", "warn", "error", "off"). The level can add
// debug output but never hides errors on Err or info lines on Info.
func New(name string, errOut, infoOut io.Writer, level string) Streams {
	lvl := hclog.LevelFromString(level)
	return Streams{
		Err: hclog.New(&hclog.LoggerOptions{
			Name:   name,
			Level:  floor(lvl, hclog.Error),
			Output: errOut,
		}),
		Info: hclog.New(&hclog.LoggerOptions{
			Name:   name,
			Level:  floor(lvl, hclog.Info),
			Output: infoOut,
		}),
	}
}

// floor caps lvl at limit; unknown levels become limit.
func floor(lvl, limit hclog.Level) hclog.Level {
	if lvl == hclog.NoLevel || lvl > limit {
		return limit
	}
	return lvl
}

// Default returns streams on stderr and stdout.
func Default(level string) Streams {
	return New("nodem", os.Stderr, os.Stdout, level)
}

// Discard returns streams that drop everything.
func Discard() Streams {
	return Streams{
		Err:  hclog.NewNullLogger(),
		Info: hclog.NewNullLogger(),
	}
}

// ValidLevel reports whether level names an hclog level.
func ValidLevel(level string) bool {
	return hclog.LevelFromString(level) != hclog.NoLevel
}
