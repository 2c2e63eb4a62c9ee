package dictionary

import (
	"strings"

	"github.com/stenoproject/plojo/command"
	"github.com/stenoproject/plojo/translation"
)

// valueScanner is a cursor over one dictionary value string, in the style
// of a recursive-descent scanner: callers advance curIndex past each
// character or {...} fragment they consume.
type valueScanner struct {
	input    string
	curIndex int
}

func (s *valueScanner) eof() bool {
	return s.curIndex >= len(s.input)
}

func (s *valueScanner) peek() byte {
	return s.input[s.curIndex]
}

// parseValue converts one Plover meta-syntax value string into a
// Translation. Bare text and {meta} fragments concatenate left to right;
// if any command fragment ({#keys} or {PLOVER:cmd}) appears, the value
// becomes a CommandTranslation and every text atom of the value, whether
// it came before or after the command, is collected as its TextAfter.
func parseValue(raw string) (translation.Translation, error) {
	s := &valueScanner{input: raw}

	var atoms []translation.TextAtom
	var cmds []command.Command
	inCommand := false

	flushLiteral := func(text string) {
		if text == "" {
			return
		}
		atoms = append(atoms, translation.Lit{Text: text})
	}

	var literal strings.Builder

	for !s.eof() {
		if s.peek() != '{' {
			literal.WriteByte(s.peek())
			s.curIndex++
			continue
		}

		// flush any literal text accumulated before this fragment
		flushLiteral(literal.String())
		literal.Reset()

		start := s.curIndex
		closeIdx := strings.IndexByte(s.input[start:], '}')
		if closeIdx < 0 {
			return nil, &ParseError{Reason: "unclosed brace in value: " + raw}
		}
		content := s.input[start+1 : start+closeIdx]
		s.curIndex = start + closeIdx + 1

		fragAtoms, fragCmd, err := parseFragment(content)
		if err != nil {
			return nil, err
		}

		if fragCmd != nil {
			inCommand = true
			cmds = append(cmds, fragCmd)
			continue
		}

		atoms = append(atoms, fragAtoms...)
	}
	flushLiteral(literal.String())

	if inCommand {
		return translation.CommandTranslation{
			Cmds:      cmds,
			TextAfter: atoms,
		}, nil
	}
	return translation.Text{Atoms: atoms}, nil
}

// parseFragment classifies the content of one {...} fragment. It returns
// either TextAtoms to append to the running atom list, or a single Command
// (in which case the enclosing entry becomes a CommandTranslation).
func parseFragment(content string) ([]translation.TextAtom, command.Command, error) {
	switch content {
	case "-|":
		return []translation.TextAtom{translation.StateActionAtom{Action: translation.ForceCapitalize{}}}, nil, nil
	case "<":
		return []translation.TextAtom{translation.StateActionAtom{Action: translation.SameCase{Upper: true}}}, nil, nil
	case ">":
		return []translation.TextAtom{translation.StateActionAtom{Action: translation.SameCase{Upper: false}}}, nil, nil
	case "*-|":
		return []translation.TextAtom{translation.TextActionAtom{Action: translation.CapitalizePrev{}}}, nil, nil
	case "*<":
		return []translation.TextAtom{translation.TextActionAtom{Action: translation.SameCasePrev{Upper: true}}}, nil, nil
	case "*>":
		return []translation.TextAtom{translation.TextActionAtom{Action: translation.SameCasePrev{Upper: false}}}, nil, nil
	case "*!":
		return []translation.TextAtom{translation.TextActionAtom{Action: translation.SuppressSpacePrev{}}}, nil, nil
	case ".", "?", "!":
		return []translation.TextAtom{
			translation.TextActionAtom{Action: translation.SuppressSpacePrev{}},
			translation.Lit{Text: content},
			translation.StateActionAtom{Action: translation.ForceCapitalize{}},
		}, nil, nil
	case ",", ":", ";":
		return []translation.TextAtom{
			translation.TextActionAtom{Action: translation.SuppressSpacePrev{}},
			translation.Lit{Text: content},
		}, nil, nil
	}

	switch {
	case strings.HasPrefix(content, "&"):
		return []translation.TextAtom{translation.Glued{Text: content[1:]}}, nil, nil

	case strings.HasPrefix(content, "#"):
		keys, err := parseKeyCommand(content[1:])
		if err != nil {
			return nil, nil, err
		}
		return nil, keys, nil

	case strings.HasPrefix(content, "PLOVER:"):
		name := strings.TrimSpace(content[len("PLOVER:"):])
		if name == "" {
			return nil, nil, &ParseError{Reason: "empty PLOVER command in value: {" + content + "}"}
		}
		if sp := strings.IndexByte(name, ' '); sp >= 0 {
			name = name[:sp]
		}
		return nil, command.TranslatorCommand{Name: strings.ToLower(name)}, nil

	case len(content) >= 2 && strings.HasPrefix(content, "^") && strings.HasSuffix(content, "^"):
		return []translation.TextAtom{translation.Attached{
			Text:       content[1 : len(content)-1],
			JoinedNext: true,
			JoinedPrev: translation.ApplyOrthography,
		}}, nil, nil

	case strings.HasPrefix(content, "^"):
		return []translation.TextAtom{translation.Attached{
			Text:       content[1:],
			JoinedNext: false,
			JoinedPrev: translation.ApplyOrthography,
		}}, nil, nil

	case strings.HasSuffix(content, "^"):
		return []translation.TextAtom{translation.Attached{
			Text:       content[:len(content)-1],
			JoinedNext: true,
			JoinedPrev: translation.DoNotAttach,
		}}, nil, nil
	}

	// an unrecognized bracketed fragment is treated as literal text, the
	// same way Plover lets {braces} escape a literal that would otherwise
	// collide with meta syntax.
	return []translation.TextAtom{translation.Lit{Text: content}}, nil, nil
}

// parseKeyCommand turns a key spec (e.g. "Return" or "Alt(Tab)", with
// several modifiers joined by '-') into a command.Keys. Only a single key with an optional
// parenthesized modifier list is supported; combos beyond that are a
// parse error, since no worked example in the dictionary exercises them.
func parseKeyCommand(spec string) (command.Command, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, &ParseError{Reason: "empty key command in value: {#}"}
	}

	mods, keyName, err := splitKeyModifiers(spec)
	if err != nil {
		return nil, err
	}

	special, ok := specialKeyNames[strings.ToLower(keyName)]
	var key command.Key
	if ok {
		key = command.Key{Special: special}
	} else if len([]rune(keyName)) == 1 {
		key = command.Key{Layout: []rune(keyName)[0]}
	} else {
		return nil, &ParseError{Reason: "unknown key name in value: {#" + spec + "}"}
	}

	return command.Keys{Key: key, Modifiers: mods}, nil
}

// splitKeyModifiers parses "alt(a)" into ([Alt], "a"), or a bare key name
// into (nil, name).
func splitKeyModifiers(spec string) ([]command.Modifier, string, error) {
	open := strings.IndexByte(spec, '(')
	if open < 0 {
		return nil, spec, nil
	}
	if !strings.HasSuffix(spec, ")") {
		return nil, "", &ParseError{Reason: "unclosed modifier group in value: {#" + spec + "}"}
	}
	modNames := strings.Split(spec[:open], "-")
	inner := spec[open+1 : len(spec)-1]

	var mods []command.Modifier
	for _, m := range modNames {
		mod, ok := modifierNames[strings.ToLower(m)]
		if !ok {
			return nil, "", &ParseError{Reason: "unknown modifier in value: {#" + spec + "}"}
		}
		mods = append(mods, mod)
	}
	return mods, inner, nil
}

var modifierNames = map[string]command.Modifier{
	"alt":     command.Alt,
	"control": command.Control,
	"ctrl":    command.Control,
	"meta":    command.Meta,
	"option":  command.Option,
	"shift":   command.Shift,
}

var specialKeyNames = map[string]command.SpecialKey{
	"backspace": command.Backspace,
	"capslock":  command.CapsLock,
	"delete":    command.Delete,
	"down":      command.DownArrow,
	"end":       command.End,
	"escape":    command.Escape,
	"f1":        command.F1,
	"f2":        command.F2,
	"f3":        command.F3,
	"f4":        command.F4,
	"f5":        command.F5,
	"f6":        command.F6,
	"f7":        command.F7,
	"f8":        command.F8,
	"f9":        command.F9,
	"f10":       command.F10,
	"f11":       command.F11,
	"f12":       command.F12,
	"home":      command.Home,
	"left":      command.LeftArrow,
	"pagedown":  command.PageDown,
	"pageup":    command.PageUp,
	"return":    command.Return,
	"right":     command.RightArrow,
	"space":     command.Space,
	"tab":       command.Tab,
	"up":        command.UpArrow,
}
