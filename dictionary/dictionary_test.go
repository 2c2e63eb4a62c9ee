package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stenoproject/plojo/command"
	"github.com/stenoproject/plojo/stroke"
	"github.com/stenoproject/plojo/translation"
)

func TestNewOverwritesAcrossSources(t *testing.T) {
	dict1 := `{"H-L": "hello", "WORLD": "world"}`
	dict2 := `{"WORLD": "something else"}`

	d, err := New([]Source{{Name: "a.json", JSON: dict1}, {Name: "b.json", JSON: dict2}})
	require.NoError(t, err)

	got, ok := d.Lookup([]stroke.Stroke{stroke.New("WORLD")})
	require.True(t, ok)
	assert.Equal(t, translation.Text{Atoms: []translation.TextAtom{translation.Lit{Text: "something else"}}}, got)

	got, ok = d.Lookup([]stroke.Stroke{stroke.New("H-L")})
	require.True(t, ok)
	assert.Equal(t, translation.Text{Atoms: []translation.TextAtom{translation.Lit{Text: "hello"}}}, got)
}

func TestNewReportsUnclosedBrace(t *testing.T) {
	_, err := New([]Source{{Name: "bad.json", JSON: `{"H-L": "{^foo"}`}})
	require.Error(t, err)
	var errs ParseErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, "bad.json", errs[0].Path)
}

func TestNewReportsInvalidJSON(t *testing.T) {
	_, err := New([]Source{{Name: "bad.json", JSON: `not json`}})
	require.Error(t, err)
}

func TestLookupUnknownKeyMisses(t *testing.T) {
	d, err := New([]Source{{Name: "a.json", JSON: `{"H-L": "hello"}`}})
	require.NoError(t, err)
	_, ok := d.Lookup([]stroke.Stroke{stroke.New("WORLD")})
	assert.False(t, ok)
}

func TestParseValueBareText(t *testing.T) {
	tr, err := parseValue("hello")
	require.NoError(t, err)
	assert.Equal(t, translation.Text{Atoms: []translation.TextAtom{translation.Lit{Text: "hello"}}}, tr)
}

func TestParseValueAttachedBothSides(t *testing.T) {
	tr, err := parseValue("{^s^}")
	require.NoError(t, err)
	assert.Equal(t, translation.Text{Atoms: []translation.TextAtom{
		translation.Attached{Text: "s", JoinedNext: true, JoinedPrev: translation.ApplyOrthography},
	}}, tr)
}

func TestParseValueAttachedLeft(t *testing.T) {
	tr, err := parseValue("{^s}")
	require.NoError(t, err)
	assert.Equal(t, translation.Text{Atoms: []translation.TextAtom{
		translation.Attached{Text: "s", JoinedNext: false, JoinedPrev: translation.ApplyOrthography},
	}}, tr)
}

func TestParseValueAttachedRight(t *testing.T) {
	tr, err := parseValue("{con^}")
	require.NoError(t, err)
	assert.Equal(t, translation.Text{Atoms: []translation.TextAtom{
		translation.Attached{Text: "con", JoinedNext: true, JoinedPrev: translation.DoNotAttach},
	}}, tr)
}

func TestParseValueGlued(t *testing.T) {
	tr, err := parseValue("{&1}")
	require.NoError(t, err)
	assert.Equal(t, translation.Text{Atoms: []translation.TextAtom{translation.Glued{Text: "1"}}}, tr)
}

func TestParseValueForceCapitalize(t *testing.T) {
	tr, err := parseValue("{-|}")
	require.NoError(t, err)
	assert.Equal(t, translation.Text{Atoms: []translation.TextAtom{
		translation.StateActionAtom{Action: translation.ForceCapitalize{}},
	}}, tr)
}

func TestParseValueSameCase(t *testing.T) {
	tr, err := parseValue("{<}")
	require.NoError(t, err)
	assert.Equal(t, translation.Text{Atoms: []translation.TextAtom{
		translation.StateActionAtom{Action: translation.SameCase{Upper: true}},
	}}, tr)
}

func TestParseValuePeriod(t *testing.T) {
	tr, err := parseValue("{.}")
	require.NoError(t, err)
	assert.Equal(t, translation.Text{Atoms: []translation.TextAtom{
		translation.TextActionAtom{Action: translation.SuppressSpacePrev{}},
		translation.Lit{Text: "."},
		translation.StateActionAtom{Action: translation.ForceCapitalize{}},
	}}, tr)
}

func TestParseValueComma(t *testing.T) {
	tr, err := parseValue("{,}")
	require.NoError(t, err)
	assert.Equal(t, translation.Text{Atoms: []translation.TextAtom{
		translation.TextActionAtom{Action: translation.SuppressSpacePrev{}},
		translation.Lit{Text: ","},
	}}, tr)
}

func TestParseValueTextActionVariants(t *testing.T) {
	tr, err := parseValue("{*-|}")
	require.NoError(t, err)
	assert.Equal(t, translation.Text{Atoms: []translation.TextAtom{
		translation.TextActionAtom{Action: translation.CapitalizePrev{}},
	}}, tr)
}

func TestParseValuePloverCommand(t *testing.T) {
	tr, err := parseValue("{PLOVER:TOGGLE_SPACE_AFTER}")
	require.NoError(t, err)
	ct, ok := tr.(translation.CommandTranslation)
	require.True(t, ok)
	require.Len(t, ct.Cmds, 1)
	assert.Equal(t, command.TranslatorCommand{Name: "toggle_space_after"}, ct.Cmds[0])
	assert.Empty(t, ct.TextAfter)
}

func TestParseValueKeysCommand(t *testing.T) {
	tr, err := parseValue("{#Return}")
	require.NoError(t, err)
	ct, ok := tr.(translation.CommandTranslation)
	require.True(t, ok)
	require.Len(t, ct.Cmds, 1)
	assert.Equal(t, command.Keys{Key: command.Key{Special: command.Return}}, ct.Cmds[0])
}

func TestParseValueKeysCommandWithModifier(t *testing.T) {
	tr, err := parseValue("{#Control(c)}")
	require.NoError(t, err)
	ct, ok := tr.(translation.CommandTranslation)
	require.True(t, ok)
	require.Len(t, ct.Cmds, 1)
	assert.Equal(t, command.Keys{Key: command.Key{Layout: 'c'}, Modifiers: []command.Modifier{command.Control}}, ct.Cmds[0])
}

func TestParseValueMultipleFragmentsConcatenate(t *testing.T) {
	tr, err := parseValue("{-|}hello{^s}")
	require.NoError(t, err)
	assert.Equal(t, translation.Text{Atoms: []translation.TextAtom{
		translation.StateActionAtom{Action: translation.ForceCapitalize{}},
		translation.Lit{Text: "hello"},
		translation.Attached{Text: "s", JoinedPrev: translation.ApplyOrthography},
	}}, tr)
}

func TestParseValueUnclosedBraceErrors(t *testing.T) {
	_, err := parseValue("{^foo")
	require.Error(t, err)
}
