package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const usage_text = `Usage: %s attached-script [detached-script]

Watch Hyprland for monitors being plugged in or unplugged and run a script
for each one, passing the monitor name as its only argument. Meant to be
started from your Hyprland config (exec-once) and run for the whole session.

Arguments:

  attached-script - Run when a monitor is added (required).
  detached-script - Run when a monitor is removed (optional).

Relative script names are looked up in ScriptPath when it is set in the
config file (usually ~/.config/hypr-monitor-notify/config.toml).
`

var errUsage = errors.New("Usage: provide a script to execute.")

// bindings are the scripts given on the command line, fixed for the life of
// the process. Detached is empty when not given. There are no flags, every
// argument is a script path.
type bindings struct {
	Attached string
	Detached string
}

func parseArgs(args []string) (bindings, error) {
	if len(args) < 1 || args[0] == "" {
		return bindings{}, errUsage
	}
	b := bindings{Attached: args[0]}
	if len(args) > 1 {
		b.Detached = args[1]
	}
	return b, nil
}

func usage(w io.Writer) {
	fmt.Fprintf(w, usage_text, filepath.Base(os.Args[0]))
}

// setupLogging configures the standard logger. Errors always reach stderr,
// quiet only hides the normal output.
func setupLogging(conf *Config) error {
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})
	log.SetOutput(os.Stderr)
	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		return errors.Wrap(err, "bad LogLevel")
	}
	if conf.Quiet && level > log.ErrorLevel {
		level = log.ErrorLevel
	}
	log.SetLevel(level)
	return nil
}
