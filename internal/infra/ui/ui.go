// Where: internal/infra/ui/ui.go
// What: High-level UI surface for workflows.
// Why: Let usecases report progress without knowing about writers or emoji.
package ui

import (
	"io"
)

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by workflows/usecases.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Block(emoji, title string, rows []KeyValue)
	List(emoji, title string, lines []string)
}

// NewConsoleUI returns a UserInterface backed by a Console.
// colorEnabled adds ANSI colors to status lines and headers.
func NewConsoleUI(out io.Writer, emojiEnabled, colorEnabled bool) UserInterface {
	console := NewWithEmoji(out, emojiEnabled)
	console.ColorEnabled = colorEnabled
	return consoleUI{console: console}
}

type consoleUI struct {
	console *Console
}

func (c consoleUI) Info(msg string) {
	c.console.Info(msg)
}

func (c consoleUI) Warn(msg string) {
	c.console.Warn(msg)
}

func (c consoleUI) Success(msg string) {
	c.console.Success(msg)
}

func (c consoleUI) Block(emoji, title string, rows []KeyValue) {
	c.console.BlockStart(emoji, title)
	for _, kv := range rows {
		c.console.Item(kv.Key, kv.Value)
	}
	c.console.BlockEnd()
}

func (c consoleUI) List(emoji, title string, lines []string) {
	c.console.BlockStart(emoji, title)
	for _, line := range lines {
		c.console.ItemPlain(line)
	}
	c.console.BlockEnd()
}
