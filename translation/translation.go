// Package translation defines the dictionary's output value type
// (Translation) and the text-fragment atoms a Translation is built from.
//
// Both are modeled as closed tagged unions: an interface with an
// unexported marker method implemented only by the variant types
// declared in this package. A type switch over a Translation or TextAtom
// should always end in a default branch that panics, so that adding a
// new variant here forces every such switch to be revisited.
package translation

import (
	"github.com/stenoproject/plojo/command"
	"github.com/stenoproject/plojo/stroke"
)

// Translation is the dictionary's output for one stroke-sequence key.
type Translation interface {
	isTranslation()
	// AsText returns the translation's text content, ignoring any
	// commands. Command translations contribute their TextAfter, if any.
	AsText() []TextAtom
}

// Text is a translation that is purely a sequence of text atoms.
type Text struct {
	Atoms []TextAtom
}

func (Text) isTranslation()        {}
func (t Text) AsText() []TextAtom { return t.Atoms }

// CommandTranslation is a translation that dispatches one or more
// external commands, optionally followed by text.
type CommandTranslation struct {
	Cmds []command.Command
	// TextAfter is nil when the command has no trailing text.
	TextAfter []TextAtom
	// SuppressSpaceBefore causes the formatter to treat this
	// translation's position as if preceded by an AttachOnly Attached
	// atom with empty text.
	SuppressSpaceBefore bool
}

func (CommandTranslation) isTranslation() {}
func (c CommandTranslation) AsText() []TextAtom {
	return c.TextAfter
}

// TextAtom is one element of a Text (or Command.TextAfter) translation.
type TextAtom interface {
	isTextAtom()
}

// Lit is a literal word; it honors the formatter's current
// capitalization state.
type Lit struct {
	Text string
}

func (Lit) isTextAtom() {}

// UnknownStroke is shown verbatim, in all caps, when no dictionary entry
// covers a stroke.
type UnknownStroke struct {
	Stroke stroke.Stroke
}

func (UnknownStroke) isTextAtom() {}

// AttachedType controls how an Attached atom's left edge behaves.
type AttachedType int

const (
	// DoNotAttach leaves normal spacing before this atom.
	DoNotAttach AttachedType = iota
	// AttachOnly suppresses the space before this atom without applying
	// orthography rules.
	AttachOnly
	// ApplyOrthography suppresses the space and rewrites the trailing
	// word in the buffer so far using the orthography rule table.
	ApplyOrthography
)

// Attached is a suffix/prefix/infix fragment that joins to the previous
// and/or next word without the default space.
type Attached struct {
	Text                string
	JoinedNext          bool
	JoinedPrev          AttachedType
	CarryCapitalization bool
}

func (Attached) isTextAtom() {}

// Glued attaches only to adjacent Glued atoms (e.g. digits, fingerspelled
// letters).
type Glued struct {
	Text string
}

func (Glued) isTextAtom() {}

// StateActionKind is the closed set of formatter-state mutations a
// StateAction atom can carry.
type StateActionKind interface {
	isStateActionKind()
}

// ForceCapitalize capitalizes the first letter of the next word.
type ForceCapitalize struct{}

func (ForceCapitalize) isStateActionKind() {}

// SameCase forces the next word to all-upper (true) or all-lower (false).
type SameCase struct {
	Upper bool
}

func (SameCase) isStateActionKind() {}

// ClearState resets the formatter state to its zero value.
type ClearState struct{}

func (ClearState) isStateActionKind() {}

// StateActionAtom mutates the formatter's state without itself emitting
// text; it affects the atom that follows it.
type StateActionAtom struct {
	Action StateActionKind
}

func (StateActionAtom) isTextAtom() {}

// TextActionKind is the closed set of mutations a TextAction atom can
// apply to the already-rendered buffer.
type TextActionKind interface {
	isTextActionKind()
}

// CapitalizePrev uppercases the first letter of the last word already in
// the buffer.
type CapitalizePrev struct{}

func (CapitalizePrev) isTextActionKind() {}

// SuppressSpacePrev removes the space directly before the last word, if
// one is present.
type SuppressSpacePrev struct{}

func (SuppressSpacePrev) isTextActionKind() {}

// SameCasePrev forces the last word already in the buffer to all-upper
// (true) or all-lower (false).
type SameCasePrev struct {
	Upper bool
}

func (SameCasePrev) isTextActionKind() {}

// TextActionAtom mutates the buffer that has already been built; it can
// only affect text already emitted, never the atom it appears as.
type TextActionAtom struct {
	Action TextActionKind
}

func (TextActionAtom) isTextAtom() {}
