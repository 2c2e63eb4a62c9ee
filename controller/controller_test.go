package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stenoproject/plojo/command"
)

func TestDispatchTranslatorCommandPanics(t *testing.T) {
	c := New(false)
	assert.Panics(t, func() {
		c.Dispatch(command.TranslatorCommand{Name: "toggle_space_after"})
	})
}

func TestDispatchShellMissingBinaryDoesNotPanic(t *testing.T) {
	c := New(false)
	assert.NotPanics(t, func() {
		c.Dispatch(command.Shell{Cmd: "plojo-nonexistent-binary-xyz", Args: []string{"--version"}})
	})
}

func TestDispatchReplaceAndNoOpDoNotPanic(t *testing.T) {
	c := New(false)
	assert.NotPanics(t, func() {
		c.Dispatch(command.ReplaceText(2, "hi"))
		c.Dispatch(command.NoOp{})
		c.Dispatch(command.PrintHello{})
	})
}
