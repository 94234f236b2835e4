// Package app wires the engine, adapters and UI together for the commands.
package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/ingyamilmolinar/rsharp/internal/config"
	game_log "github.com/ingyamilmolinar/rsharp/internal/log"
)

// ErrUsage marks command-line mistakes.
var ErrUsage = errors.New("usage")

// ExitCode maps a command's result to its process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage), errors.Is(err, flag.ErrHelp):
		return 2
	default:
		return 1
	}
}

// Usagef builds an ErrUsage with a message.
func Usagef(format string, v ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, v...))
}

// ParseArgs parses flags that may appear before, between or after
// positional arguments, and returns the positionals in order.
func ParseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", ErrUsage, err)
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if rest[0] == "--" {
			return append(positional, rest[1:]...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// Logger builds the process logger. A non-empty level overrides the config.
func Logger(out io.Writer, cfg *config.Config, level string) (*game_log.Logger, error) {
	if strings.TrimSpace(level) == "" {
		level = cfg.LogLevel
	}
	lvl, err := game_log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return game_log.New(out, lvl), nil
}
