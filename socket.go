package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// dial opens the event socket. There is no retry, the caller exits on error.
func dial(path string) (net.Conn, error) {
	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, errors.Wrap(err, "Couldn't connect")
	}
	return conn, nil
}

// closeOnHalt closes conn when we are told to quit, which unblocks the read
// loop. Calling the returned func stops watching.
func closeOnHalt(conn net.Conn) (stop func()) {
	interrupts := sighalt()
	done := make(chan struct{})
	go func() {
		select {
		case <-interrupts:
			conn.Close()
		case <-done:
		}
	}()
	return func() {
		signal.Stop(interrupts)
		close(done)
	}
}

// watch for signals to quit
func sighalt() chan os.Signal {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGQUIT, syscall.SIGTERM)
	return interrupts
}
