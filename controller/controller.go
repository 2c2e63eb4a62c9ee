// Package controller dispatches the commands a Translator emits to the
// focused application: keystrokes for a Replace, a best-effort spawn for
// a Shell, and so on.
package controller

import (
	"fmt"
	"os/exec"

	"github.com/sirupsen/logrus"

	"github.com/stenoproject/plojo/command"
)

// Controller is the sink side of the pipeline: Machine -> Translator ->
// Controller. TranslatorCommand is routed back to the Translator instead
// of reaching here; a Controller that receives one anyway has been wired
// incorrectly and should treat it as a programmer error.
type Controller interface {
	Dispatch(cmd command.Command)
}

// Stdout is a Controller that writes what a real text-injection backend
// would type to standard output instead: each dispatched Replace prints an
// optional "[n backspaces]" marker followed by the inserted text, with no
// newline added. It is the only Controller, and `plojo run --dispatch`
// always uses it.
type Stdout struct {
	disableScanKeymap bool
	log               logrus.FieldLogger
}

// New constructs a Stdout controller. disableScanKeymap is accepted for
// parity with the real input-method controllers this stands in for, which
// use it to skip re-announcing their keymap to the compositor on startup;
// Stdout has no keymap to announce, so the flag is only recorded.
func New(disableScanKeymap bool) *Stdout {
	return &Stdout{disableScanKeymap: disableScanKeymap, log: logrus.StandardLogger()}
}

// Dispatch performs one command. Replace is rendered as the backspace
// count plus the inserted text; Shell is spawned best-effort; a
// TranslatorCommand reaching here indicates the caller forgot to route it
// through Translator.HandleCommand instead.
func (c *Stdout) Dispatch(cmd command.Command) {
	switch v := cmd.(type) {
	case command.Replace:
		if v.Backspaces > 0 {
			fmt.Printf("[%d backspaces]", v.Backspaces)
		}
		fmt.Print(v.Insert)
	case command.NoOp:
	case command.PrintHello:
		fmt.Println("Hello!")
	case command.Keys:
		c.log.WithField("key", v.Key).Debug("ignoring synthetic key press on stdout controller")
	case command.Raw:
		c.log.WithField("keycode", v.Keycode).Debug("ignoring raw keycode on stdout controller")
	case command.Shell:
		dispatchShell(c.log, v.Cmd, v.Args)
	case command.TranslatorCommand:
		panic(fmt.Sprintf("controller: cannot dispatch translator command %q, route it through Translator.HandleCommand", v.Name))
	default:
		panic(fmt.Sprintf("controller: unknown command %T", cmd))
	}
}

// dispatchShell best-effort spawns cmd with args. A failure to start is
// logged and otherwise ignored: a misconfigured shell command must never
// abort the translation pipeline.
func dispatchShell(log logrus.FieldLogger, cmd string, args []string) {
	if err := exec.Command(cmd, args...).Start(); err != nil {
		log.WithError(err).WithField("cmd", cmd).Warn("could not execute shell command")
	}
}
