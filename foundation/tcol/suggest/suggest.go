// File: suggest.go
// Title: TCOL Command Suggestions
// Description: Proposes procedures for a partially typed command line,
//              by case-insensitive substring match or fuzzy ranking.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-15
// Modified: 2025-10-15

// Package suggest lists the procedures matching what the user has typed so
// far. Only the first whitespace-delimited token of the input is matched.
package suggest

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/msto63/procline/foundation/tcol/registry"
)

// DefaultMaxEntries caps the number of suggestions when Options leaves it 0
const DefaultMaxEntries = 10

// Source lists the procedures that can be suggested
type Source interface {
	Procedures() []*registry.Procedure
}

// Options configures matching
type Options struct {
	MaxEntries    int
	CaseSensitive bool

	// Fuzzy ranks by fuzzy score instead of filtering by substring.
	// Fuzzy matching ignores CaseSensitive.
	Fuzzy bool
}

// Suggestion is one proposed procedure. Start and End delimit, in bytes of
// Name, the matched text a UI may highlight; they are equal when nothing
// was typed.
type Suggestion struct {
	Name      string
	Label     string
	Start     int
	End       int
	Procedure *registry.Procedure
}

// Suggester produces suggestions from a Source
type Suggester struct {
	source  Source
	options Options
}

// New creates a suggester
func New(source Source, opts Options) *Suggester {
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = DefaultMaxEntries
	}
	return &Suggester{source: source, options: opts}
}

// Suggest returns the procedures matching the first token of input, at
// most MaxEntries of them. Blank input matches every procedure.
func (s *Suggester) Suggest(input string) []Suggestion {
	token := FirstToken(input)
	procs := s.source.Procedures()

	var out []Suggestion
	switch {
	case token == "":
		out = make([]Suggestion, 0, len(procs))
		for _, p := range procs {
			out = append(out, suggestion(p, 0, 0))
		}
		sortByName(out)
	case s.options.Fuzzy:
		out = s.fuzzy(token, procs)
	default:
		out = s.substring(token, procs)
	}

	if len(out) > s.options.MaxEntries {
		out = out[:s.options.MaxEntries]
	}
	return out
}

func (s *Suggester) substring(token string, procs []*registry.Procedure) []Suggestion {
	var out []Suggestion
	for _, p := range procs {
		var start, end int
		if s.options.CaseSensitive {
			start = strings.Index(p.Name(), token)
			end = start + len(token)
		} else {
			start, end = indexFold(p.Name(), token)
		}
		if start >= 0 {
			out = append(out, suggestion(p, start, end))
		}
	}
	sortByName(out)
	return out
}

// fuzzy keeps the ranking of the fuzzy matcher, best match first
func (s *Suggester) fuzzy(token string, procs []*registry.Procedure) []Suggestion {
	names := make([]string, len(procs))
	for i, p := range procs {
		names[i] = p.Name()
	}

	matches := fuzzy.Find(token, names)
	out := make([]Suggestion, 0, len(matches))
	for _, m := range matches {
		start, end := 0, 0
		if n := len(m.MatchedIndexes); n > 0 {
			last := m.MatchedIndexes[n-1]
			_, size := utf8.DecodeRuneInString(m.Str[last:])
			start, end = m.MatchedIndexes[0], last+size
		}
		out = append(out, suggestion(procs[m.Index], start, end))
	}
	return out
}

func suggestion(p *registry.Procedure, start, end int) Suggestion {
	return Suggestion{
		Name:      p.Name(),
		Label:     p.Signature(),
		Start:     start,
		End:       end,
		Procedure: p,
	}
}

func sortByName(s []Suggestion) {
	sort.Slice(s, func(i, j int) bool { return s[i].Name < s[j].Name })
}

// FirstToken returns the first whitespace-delimited token of input
func FirstToken(input string) string {
	fields := strings.FieldsFunc(input, unicode.IsSpace)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// indexFold finds substr in s ignoring case and returns the byte span of
// the first occurrence, or -1, -1
func indexFold(s, substr string) (int, int) {
	n := utf8.RuneCountInString(substr)
	for i := range s {
		end := i
		for k := 0; k < n && end < len(s); k++ {
			_, size := utf8.DecodeRuneInString(s[end:])
			end += size
		}
		if strings.EqualFold(s[i:end], substr) {
			return i, end
		}
	}
	return -1, -1
}
