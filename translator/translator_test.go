package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stenoproject/plojo/command"
	"github.com/stenoproject/plojo/dictionary"
	"github.com/stenoproject/plojo/stroke"
	"github.com/stenoproject/plojo/translation"
)

func mustDict(t *testing.T, json string) *dictionary.Dictionary {
	t.Helper()
	d, err := dictionary.New([]dictionary.Source{{Name: "test", JSON: json}})
	require.NoError(t, err)
	return d
}

func TestScenarioBasicTwoStrokes(t *testing.T) {
	d := mustDict(t, `{"H-L":"hello","WORLD":"world"}`)
	tr := New(d, nil, nil, nil, false)

	got := tr.Translate(stroke.New("H-L"))
	assert.Equal(t, []command.Command{command.ReplaceText(0, " hello")}, got)

	got = tr.Translate(stroke.New("WORLD"))
	assert.Equal(t, []command.Command{command.ReplaceText(0, " world")}, got)
}

func TestScenarioForceCapitalizeIsInvisibleThenCapitalizes(t *testing.T) {
	d := mustDict(t, `{"H-L":"hello","KPA":"{-|}"}`)
	tr := New(d, nil, nil, nil, false)

	got := tr.Translate(stroke.New("KPA"))
	assert.Equal(t, []command.Command{command.NoOp{}}, got)

	got = tr.Translate(stroke.New("H-L"))
	assert.Equal(t, []command.Command{command.ReplaceText(0, " Hello")}, got)
}

func TestScenarioAttachedSuffix(t *testing.T) {
	d := mustDict(t, `{"H-L":"hello","-S":"{^s}"}`)
	tr := New(d, nil, nil, nil, false)

	got := tr.Translate(stroke.New("H-L"))
	assert.Equal(t, []command.Command{command.ReplaceText(0, " hello")}, got)

	got = tr.Translate(stroke.New("-S"))
	assert.Equal(t, []command.Command{command.ReplaceText(0, "s")}, got)
}

func TestScenarioCapitalizePrevAfterTheFact(t *testing.T) {
	d := mustDict(t, `{"TKAOER":"deer","AOE":"{*-|}"}`)
	tr := New(d, nil, nil, nil, false)

	got := tr.Translate(stroke.New("TKAOER"))
	assert.Equal(t, []command.Command{command.ReplaceText(0, " deer")}, got)

	got = tr.Translate(stroke.New("AOE"))
	assert.Equal(t, []command.Command{command.ReplaceText(4, "Deer")}, got)
}

func TestScenarioGluedDigits(t *testing.T) {
	d := mustDict(t, `{"1-9":"{&1}","-7":"{&7}"}`)
	tr := New(d, nil, nil, nil, false)

	got := tr.Translate(stroke.New("1-9"))
	assert.Equal(t, []command.Command{command.ReplaceText(0, " 1")}, got)

	got = tr.Translate(stroke.New("-7"))
	assert.Equal(t, []command.Command{command.ReplaceText(0, "7")}, got)
}

func TestScenarioRetrospectiveAddSpace(t *testing.T) {
	d := mustDict(t, `{"H-L":"hello","WORLD":"world","S-P":" "}`)
	spaceStroke := stroke.New("S-P")
	tr := New(d, nil, []stroke.Stroke{stroke.New("A*")}, &spaceStroke, false)

	_ = tr.Translate(stroke.New("H-L"))
	_ = tr.Translate(stroke.New("WORLD"))
	tr.Translate(stroke.New("A*"))

	assert.Equal(t, []stroke.Stroke{stroke.New("H-L"), stroke.New("S-P"), stroke.New("WORLD")}, tr.prevStrokes)
}

func TestUndoRetractsLastVisibleStroke(t *testing.T) {
	d := mustDict(t, `{"H-L":"hello","WORLD":"world"}`)
	tr := New(d, nil, nil, nil, false)

	tr.Translate(stroke.New("H-L"))
	tr.Translate(stroke.New("WORLD"))

	got := tr.Undo()
	assert.Equal(t, []command.Command{command.ReplaceText(6, "")}, got)
}

func TestUndoEmptyHistoryReturnsNoOp(t *testing.T) {
	d := mustDict(t, `{"H-L":"hello"}`)
	tr := New(d, nil, nil, nil, false)

	assert.Equal(t, []command.Command{command.NoOp{}}, tr.Undo())
}

func TestHandleCommandClearPrevStrokes(t *testing.T) {
	d := mustDict(t, `{"H-L":"hello","WORLD":"world"}`)
	tr := New(d, nil, nil, nil, false)

	tr.Translate(stroke.New("H-L"))
	tr.Translate(stroke.New("WORLD"))
	tr.HandleCommand("clear_prev_strokes")

	assert.Equal(t, []stroke.Stroke{stroke.New("WORLD")}, tr.prevStrokes)
}

func TestHandleCommandToggleSpaceAfter(t *testing.T) {
	d := mustDict(t, `{"H-L":"hello"}`)
	tr := New(d, nil, nil, nil, false)

	assert.False(t, tr.spaceAfter)
	tr.HandleCommand("toggle_space_after")
	assert.True(t, tr.spaceAfter)
}

func TestHandleCommandUnknownLogsAndIgnores(t *testing.T) {
	d := mustDict(t, `{"H-L":"hello"}`)
	tr := New(d, nil, nil, nil, false)
	tr.HandleCommand("not_a_real_command")
	assert.Equal(t, false, tr.spaceAfter)
}

func TestCommandEmittedOnceWhileItRemainsInWindow(t *testing.T) {
	d := mustDict(t, `{"H-L":"hello","TKAO*ER":"{#Return}","WORLD":"world"}`)
	tr := New(d, nil, nil, nil, false)

	got := tr.Translate(stroke.New("H-L"))
	assert.Equal(t, []command.Command{command.ReplaceText(0, " hello")}, got)

	got = tr.Translate(stroke.New("TKAO*ER"))
	require.Len(t, got, 2)
	assert.Equal(t, command.NoOp{}, got[0])
	assert.Equal(t, command.Keys{Key: command.Key{Special: command.Return}}, got[1])

	// the command translation is still in the 10-stroke window; it must
	// not be re-emitted on a later stroke.
	got = tr.Translate(stroke.New("WORLD"))
	assert.Equal(t, []command.Command{command.ReplaceText(0, " world")}, got)
}

func TestIsText(t *testing.T) {
	assert.True(t, isText(translation.Text{Atoms: []translation.TextAtom{translation.Lit{Text: "hello"}}}))
	assert.True(t, isText(translation.Text{Atoms: []translation.TextAtom{translation.Glued{Text: "s"}}}))
	assert.False(t, isText(translation.Text{Atoms: []translation.TextAtom{
		translation.StateActionAtom{Action: translation.ForceCapitalize{}},
	}}))
	assert.False(t, isText(translation.Text{Atoms: []translation.TextAtom{
		translation.TextActionAtom{Action: translation.CapitalizePrev{}},
	}}))
	assert.False(t, isText(translation.CommandTranslation{Cmds: nil, TextAfter: nil}))
	assert.False(t, isText(translation.CommandTranslation{
		Cmds:      []command.Command{command.NoOp{}},
		TextAfter: []translation.TextAtom{translation.StateActionAtom{Action: translation.ForceCapitalize{}}},
	}))
	assert.False(t, isText(translation.CommandTranslation{
		Cmds:      []command.Command{command.NoOp{}},
		TextAfter: []translation.TextAtom{},
	}))
}
