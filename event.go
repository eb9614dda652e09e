package main

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Hyprland event names (the part before ">>")
const (
	monitorAdded   = "monitoradded"
	monitorRemoved = "monitorremoved"
)

const eventSep = ">>"

// Event is one line from the event socket.
type Event struct {
	Kind    string
	Payload string
	Parts   []string
}

// parseEvent never fails. Invalid UTF-8 becomes U+FFFD and a missing
// payload is left empty for the caller to deal with.
func parseEvent(line []byte) Event {
	// the UTF-8 decoder replaces bad bytes rather than failing
	text, _ := unicode.UTF8.NewDecoder().String(string(line))
	parts := strings.Split(strings.TrimSpace(text), eventSep)
	ev := Event{Kind: parts[0], Parts: parts}
	if len(parts) > 1 {
		ev.Payload = parts[1]
	}
	return ev
}

func (e Event) hasPayload() bool {
	return len(e.Parts) > 1
}
