// Package telemetry logs raw strokes to a JSONL file and computes n-gram
// frequency statistics over a logged session, grounded on the
// analyze_frequency/FrequencyAnalyzer shape of the original telemetry
// tool (reimplemented fresh: only its main.rs survived into this corpus).
package telemetry

import (
	"bufio"
	"encoding/json"
	"io"
	"sort"

	"github.com/gofrs/uuid"

	"github.com/stenoproject/plojo/stroke"
)

// Entry is one logged stroke. Ts is supplied by the caller rather than
// read internally by this package, since the core performs no I/O and
// has no notion of wall-clock time.
type Entry struct {
	Session string `json:"session"`
	Seq     int    `json:"seq"`
	Stroke  string `json:"stroke"`
	Ts      int64  `json:"ts"`
}

// Logger appends one JSONL Entry per stroke, tagging every entry with the
// session id minted when the Logger was created, so logs from multiple translator
// instances can be merged and later disambiguated.
type Logger struct {
	w       *bufio.Writer
	session string
	seq     int
}

// NewLogger wraps w and mints a fresh session id via gofrs/uuid.
func NewLogger(w io.Writer) (*Logger, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &Logger{w: bufio.NewWriter(w), session: id.String()}, nil
}

// Log appends one stroke entry at the given caller-supplied timestamp.
func (l *Logger) Log(s stroke.Stroke, ts int64) error {
	l.seq++
	entry := Entry{Session: l.session, Seq: l.seq, Stroke: s.Raw(), Ts: ts}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if _, err := l.w.Write(data); err != nil {
		return err
	}
	if err := l.w.WriteByte('\n'); err != nil {
		return err
	}
	return nil
}

// Flush flushes any buffered entries to the underlying writer.
func (l *Logger) Flush() error {
	return l.w.Flush()
}

// Gram is one n-gram frequency bucket in a sorted report.
type Gram struct {
	Strokes []string
	Count   int
}

// ReadLog parses a JSONL stroke log into an ordered slice of Entry, in
// file order.
func ReadLog(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// NGramFrequency groups entries into overlapping n-gram windows (e.g.
// n=1 single strokes, n=2 consecutive pairs) and counts occurrences of
// each distinct window, grouped per session so a stroke log merged from
// multiple sessions does not spuriously pair the last stroke of one
// session with the first of the next. The result is sorted by
// descending count, breaking ties by first-seen order.
func NGramFrequency(entries []Entry, n int) []Gram {
	if n < 1 {
		return nil
	}

	counts := make(map[string]int)
	strokesByKey := make(map[string][]string)
	order := make(map[string]int)
	var orderedKeys []string

	bySession := make(map[string][]Entry)
	var sessionOrder []string
	for _, e := range entries {
		if _, ok := bySession[e.Session]; !ok {
			sessionOrder = append(sessionOrder, e.Session)
		}
		bySession[e.Session] = append(bySession[e.Session], e)
	}

	for _, session := range sessionOrder {
		seq := bySession[session]
		for i := 0; i+n <= len(seq); i++ {
			strokes := make([]string, n)
			for j := 0; j < n; j++ {
				strokes[j] = seq[i+j].Stroke
			}
			key := ngramKey(strokes)
			if _, seen := order[key]; !seen {
				order[key] = len(orderedKeys)
				orderedKeys = append(orderedKeys, key)
				strokesByKey[key] = strokes
			}
			counts[key]++
		}
	}

	grams := make([]Gram, 0, len(orderedKeys))
	for _, key := range orderedKeys {
		grams = append(grams, Gram{Strokes: strokesByKey[key], Count: counts[key]})
	}

	sort.SliceStable(grams, func(i, j int) bool {
		if grams[i].Count != grams[j].Count {
			return grams[i].Count > grams[j].Count
		}
		return order[ngramKey(grams[i].Strokes)] < order[ngramKey(grams[j].Strokes)]
	})

	return grams
}

func ngramKey(strokes []string) string {
	key := ""
	for i, s := range strokes {
		if i > 0 {
			key += "/"
		}
		key += s
	}
	return key
}
