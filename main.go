package main

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, execSpawner{}))
}

// run only ever returns 1. Listening is supposed to last for the whole
// session, so getting past it at all is a failure for whoever started us.
func run(args []string, getenv func(string) string, spawner Spawner) int {
	// defaults until the config file is read, so early errors look the same
	setupLogging(defaultConfig())
	env, err := envConfig(getenv)
	if err != nil {
		log.Errorf("Fatal Error: Hyprland is not run. %v", err)
		return 1
	}

	conf, err := getConfig(getenv)
	if err != nil {
		log.Error(err)
		return 1
	}
	if err := setupLogging(conf); err != nil {
		log.Error(err)
		return 1
	}

	b, err := parseArgs(args)
	if err != nil {
		usage(os.Stderr)
		return 1
	}
	b.Attached = conf.resolveScript(b.Attached)
	b.Detached = conf.resolveScript(b.Detached)

	sock := socketPath(env, pathExists)
	conn, err := dial(sock)
	if err != nil {
		log.Error(err)
		return 1
	}
	defer conn.Close()
	stop := closeOnHalt(conn)
	defer stop()
	log.WithField("socket", sock).Info("listening for monitor events")

	bridge := newBridge(b, spawner, log.StandardLogger())
	err = bridge.Listen(conn)
	switch errors.Cause(err).(type) {
	case nil:
		log.Warn("event socket closed")
	case *spawnError:
		log.StandardLogger().Log(log.FatalLevel, err)
	default:
		log.Error(err)
	}
	return 1
}
