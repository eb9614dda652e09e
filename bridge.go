package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// Spawner starts a script without waiting for it.
type Spawner interface {
	Spawn(path string, args ...string) error
}

// execSpawner runs scripts as child processes sharing our stdio. Each child
// is reaped in its own goroutine so the read loop never waits on it.
type execSpawner struct{}

func (execSpawner) Spawn(path string, args ...string) error {
	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()
	return nil
}

// spawnError means a script that passed the file checks could not be
// started. The bridge treats it as fatal.
type spawnError struct {
	script string
	err    error
}

func (e *spawnError) Error() string {
	return fmt.Sprintf("Failed to execute command '%s': %v", e.script, e.err)
}

func (e *spawnError) Unwrap() error { return e.err }

// Bridge reads compositor events and runs the script bound to each.
type Bridge struct {
	scripts map[string]string
	spawner Spawner
	log     *log.Entry
}

func newBridge(b bindings, spawner Spawner, logger *log.Logger) *Bridge {
	scripts := map[string]string{monitorAdded: b.Attached}
	if b.Detached != "" {
		scripts[monitorRemoved] = b.Detached
	}
	return &Bridge{
		scripts: scripts,
		spawner: spawner,
		log:     log.NewEntry(logger),
	}
}

// Listen handles events from r until EOF (returns nil), a read error, or a
// script that can't be started.
func (b *Bridge) Listen(r io.Reader) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			if herr := b.handle(parseEvent(line)); herr != nil {
				return herr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading event socket")
		}
	}
}

func (b *Bridge) handle(ev Event) error {
	b.log.WithField("event", ev.Kind).Debug(ev.Payload)
	script, ok := b.scripts[ev.Kind]
	if !ok {
		return nil
	}
	if !ev.hasPayload() {
		b.log.Errorf("Error: '%s' event without a monitor name.", ev.Kind)
		return nil
	}
	if err := checkScript(script); err != nil {
		b.log.Error(err)
		return nil
	}
	if err := b.spawner.Spawn(script, ev.Payload); err != nil {
		return &spawnError{script: script, err: err}
	}
	return nil
}

type scriptError struct {
	script string
	reason string
}

func (e *scriptError) Error() string {
	return fmt.Sprintf("Error: '%s' file %s.", e.script, e.reason)
}

// checkScript only looks at the owner execute bit.
func checkScript(path string) error {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return &scriptError{script: path, reason: "not found"}
	}
	if st.Mode&unix.S_IXUSR == 0 {
		return &scriptError{script: path, reason: "is not executable"}
	}
	return nil
}
