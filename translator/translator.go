// Package translator implements the stateful orchestrator that turns one
// incoming stroke into the sequence of commands a Controller should
// dispatch, based on a before/after render of a sliding window of stroke
// history.
package translator

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"

	"github.com/stenoproject/plojo/command"
	"github.com/stenoproject/plojo/differ"
	"github.com/stenoproject/plojo/dictionary"
	"github.com/stenoproject/plojo/formatter"
	"github.com/stenoproject/plojo/lookup"
	"github.com/stenoproject/plojo/stroke"
	"github.com/stenoproject/plojo/translation"
)

// maxStrokeBuffer bounds prevStrokes; the oldest stroke is dropped once
// the buffer would exceed it. This also bounds how far undo can reach.
const maxStrokeBuffer = 50

// maxTranslationWindow bounds how many trailing strokes are re-rendered
// on each incoming stroke, for performance.
const maxTranslationWindow = 10

// Translator is the contract a Machine-driving loop depends on.
type Translator interface {
	Translate(s stroke.Stroke) []command.Command
	Undo() []command.Command
	HandleCommand(name string)
}

// StandardTranslator is a Plover-style translator: a stroke history buffer
// rendered through a shared Dictionary, with optional retrospective-space
// insertion.
type StandardTranslator struct {
	prevStrokes           []stroke.Stroke
	dict                  *dictionary.Dictionary
	retrospectiveAddSpace []stroke.Stroke
	addSpaceInsert        *stroke.Stroke
	spaceAfter            bool
}

// New constructs a StandardTranslator. startingStrokes seed the history
// buffer. If retrospectiveAddSpace is non-empty, addSpaceInsert must be
// non-nil.
func New(
	dict *dictionary.Dictionary,
	startingStrokes []stroke.Stroke,
	retrospectiveAddSpace []stroke.Stroke,
	addSpaceInsert *stroke.Stroke,
	spaceAfter bool,
) *StandardTranslator {
	if len(retrospectiveAddSpace) > 0 && addSpaceInsert == nil {
		panic("translator: retrospectiveAddSpace configured without addSpaceInsert")
	}
	return &StandardTranslator{
		prevStrokes:           startingStrokes,
		dict:                  dict,
		retrospectiveAddSpace: retrospectiveAddSpace,
		addSpaceInsert:        addSpaceInsert,
		spaceAfter:            spaceAfter,
	}
}

// Translate processes one incoming stroke and returns the commands the
// Controller should dispatch, in order.
func (t *StandardTranslator) Translate(s stroke.Stroke) []command.Command {
	if len(t.prevStrokes) >= maxStrokeBuffer {
		t.prevStrokes = t.prevStrokes[1:]
	}

	start := 0
	if len(t.prevStrokes) > maxTranslationWindow {
		start = len(t.prevStrokes) - maxTranslationWindow
	}

	oldTranslations := lookup.Translate(t.prevStrokes[start:], t.dict)

	if containsStroke(t.retrospectiveAddSpace, s) {
		index := len(t.prevStrokes)
		for i := len(t.prevStrokes) - 1; i >= 0; i-- {
			index--
			single := lookup.Translate([]stroke.Stroke{t.prevStrokes[i]}, t.dict)
			if anyIsText(single) {
				break
			}
		}
		if t.addSpaceInsert != nil {
			t.prevStrokes = insertStroke(t.prevStrokes, index, *t.addSpaceInsert)
		}
	} else {
		t.prevStrokes = append(t.prevStrokes, s)
	}

	newTranslations := lookup.Translate(t.prevStrokes[start:], t.dict)

	return translationDiff(oldTranslations, newTranslations, t.spaceAfter)
}

// Undo removes strokes from the end of history until a visible change is
// produced, and returns the diff that retracts it. If the whole buffer
// empties without ever producing a visible change, it returns [NoOp].
func (t *StandardTranslator) Undo() []command.Command {
	oldTranslations := lookup.Translate(t.prevStrokes, t.dict)

	for len(t.prevStrokes) > 0 {
		t.prevStrokes = t.prevStrokes[:len(t.prevStrokes)-1]
		newTranslations := lookup.Translate(t.prevStrokes, t.dict)
		diff := translationDiff(oldTranslations, newTranslations, t.spaceAfter)
		if !isNoOpOnly(diff) {
			return diff
		}
	}

	return []command.Command{command.NoOp{}}
}

// HandleCommand implements the translator-routed half of
// command.TranslatorCommand dispatch.
func (t *StandardTranslator) HandleCommand(name string) {
	switch name {
	case "clear_prev_strokes":
		// keep only the last stroke: it triggered this command and may
		// carry trailing text that must be preserved.
		if len(t.prevStrokes) > 0 {
			t.prevStrokes = []stroke.Stroke{t.prevStrokes[len(t.prevStrokes)-1]}
		} else {
			t.prevStrokes = nil
		}
	case "toggle_space_after":
		t.spaceAfter = !t.spaceAfter
	default:
		logrus.WithField("command", name).Warn("standard translator cannot handle command")
	}
}

func containsStroke(strokes []stroke.Stroke, s stroke.Stroke) bool {
	for _, c := range strokes {
		if c == s {
			return true
		}
	}
	return false
}

func insertStroke(strokes []stroke.Stroke, index int, s stroke.Stroke) []stroke.Stroke {
	out := make([]stroke.Stroke, 0, len(strokes)+1)
	out = append(out, strokes[:index]...)
	out = append(out, s)
	out = append(out, strokes[index:]...)
	return out
}

func isNoOpOnly(cmds []command.Command) bool {
	if len(cmds) != 1 {
		return false
	}
	_, ok := cmds[0].(command.NoOp)
	return ok
}

// isText reports whether t contributes any visible text: at least one
// UnknownStroke, or a Lit/Glued/Attached atom with non-empty text. Pure
// action/state sequences and Command translations with empty or absent
// trailing text are not text.
func isText(t translation.Translation) bool {
	atoms := t.AsText()
	for _, a := range atoms {
		switch v := a.(type) {
		case translation.UnknownStroke:
			return true
		case translation.Lit:
			if v.Text != "" {
				return true
			}
		case translation.Glued:
			if v.Text != "" {
				return true
			}
		case translation.Attached:
			if v.Text != "" {
				return true
			}
		case translation.StateActionAtom, translation.TextActionAtom:
			continue
		default:
			panic(fmt.Sprintf("translator: unknown TextAtom %T", a))
		}
	}
	return false
}

func anyIsText(translations []translation.Translation) bool {
	for _, t := range translations {
		if isText(t) {
			return true
		}
	}
	return false
}

// flatten concatenates the text contribution of every translation in
// order, inserting an empty AttachOnly Attached atom wherever a Command
// translation's SuppressSpaceBefore is set, per its contract with the
// formatter.
func flatten(translations []translation.Translation) []translation.TextAtom {
	var atoms []translation.TextAtom
	for _, t := range translations {
		if ct, ok := t.(translation.CommandTranslation); ok && ct.SuppressSpaceBefore {
			atoms = append(atoms, translation.Attached{JoinedPrev: translation.AttachOnly, JoinedNext: true})
		}
		atoms = append(atoms, t.AsText()...)
	}
	return atoms
}

// translationDiff renders old and new translation lists, diffs the
// result, and appends the commands owned by any translation that is new
// in `newT` but was not already present in `oldT` (by value, in order of
// first appearance), since those are the commands the Controller has not
// yet been told about.
func translationDiff(oldT, newT []translation.Translation, spaceAfter bool) []command.Command {
	oldStr := formatter.Format(flatten(oldT), spaceAfter)
	newStr := formatter.Format(flatten(newT), spaceAfter)

	cmds := []command.Command{differ.Diff(oldStr, newStr)}

	remaining := make([]translation.Translation, len(oldT))
	copy(remaining, oldT)

	for _, t := range newT {
		ct, ok := t.(translation.CommandTranslation)
		if !ok || len(ct.Cmds) == 0 {
			continue
		}
		if idx := indexOfEqual(remaining, t); idx >= 0 {
			remaining = append(remaining[:idx], remaining[idx+1:]...)
			continue
		}
		cmds = append(cmds, ct.Cmds...)
	}

	return cmds
}

func indexOfEqual(translations []translation.Translation, target translation.Translation) int {
	for i, t := range translations {
		if reflect.DeepEqual(t, target) {
			return i
		}
	}
	return -1
}
