// Package gamelog holds the in-game message log that systems report to.
package gamelog

import (
	"io"
	"log"
	"slices"
	"strings"
)

// Sink receives one human-readable message per call.
type Sink interface {
	Add(msg string)
}

// DefaultCapacity is how many messages a Log keeps when none is given.
const DefaultCapacity = 100

// Log keeps the most recent messages in memory and mirrors each one to a
// stdlib logger.
type Log struct {
	messages []string
	capacity int
	out      *log.Logger
}

// New creates a Log keeping up to capacity messages. A nil logger discards
// the mirror output.
func New(capacity int, out *log.Logger) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if out == nil {
		out = log.New(io.Discard, "", 0)
	}
	return &Log{capacity: capacity, out: out}
}

// Add appends msg, dropping the oldest message once the log is full.
func (l *Log) Add(msg string) {
	l.messages = append(l.messages, msg)
	if over := len(l.messages) - l.capacity; over > 0 {
		l.messages = slices.Delete(l.messages, 0, over)
	}
	l.out.Print(msg)
}

// Messages returns a copy of the retained messages, oldest first.
func (l *Log) Messages() []string {
	return slices.Clone(l.messages)
}

// Contains reports whether any retained message contains substr.
func (l *Log) Contains(substr string) bool {
	return slices.ContainsFunc(l.messages, func(m string) bool {
		return strings.Contains(m, substr)
	})
}
