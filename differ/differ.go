// Package differ computes the minimal backspace-and-insert command that
// turns one rendered string into another.
package differ

import (
	"github.com/stenoproject/plojo/command"
)

// Diff returns the command that transforms old into new: a Replace that
// backspaces past the longest common character prefix and inserts the
// remaining tail of new, or NoOp if old and new are identical.
func Diff(old, new string) command.Command {
	oldRunes := []rune(old)
	newRunes := []rune(new)

	common := 0
	for common < len(oldRunes) && common < len(newRunes) && oldRunes[common] == newRunes[common] {
		common++
	}

	backspaces := len(oldRunes) - common
	tail := string(newRunes[common:])

	if backspaces == 0 && tail == "" {
		return command.NoOp{}
	}
	return command.ReplaceText(backspaces, tail)
}
