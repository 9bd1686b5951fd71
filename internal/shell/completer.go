// ============================================================================
// procline - typed procedure invocation from the command line
// ============================================================================
//
// Package:     shell
// Description: Tab completion of procedure names for readline
// Author:      msto63
// Created:     2025-10-15
// License:     MIT
// ============================================================================

package shell

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chzyer/readline"

	"github.com/msto63/procline/foundation/tcol"
)

// Completer completes the command name, the first word of the line
type Completer struct {
	engine *tcol.Engine
}

// NewCompleter creates a completer over the engine's procedures
func NewCompleter(engine *tcol.Engine) *Completer {
	return &Completer{engine: engine}
}

// Do implements readline.AutoCompleter. It returns the missing suffix of
// every name starting with the word under the cursor.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	head := strings.TrimLeftFunc(string(line[:pos]), unicode.IsSpace)
	if strings.IndexFunc(head, unicode.IsSpace) >= 0 {
		return nil, 0
	}

	var names []string
	for _, name := range c.engine.Registry().Names() {
		if strings.HasPrefix(name, head) {
			names = append(names, name)
		}
	}
	for _, b := range builtins {
		if strings.HasPrefix(b, head) {
			names = append(names, b)
		}
	}
	sort.Strings(names)

	out := make([][]rune, 0, len(names))
	for _, name := range names {
		out = append(out, []rune(name[len(head):]+" "))
	}
	return out, utf8.RuneCountInString(head)
}

var _ readline.AutoCompleter = (*Completer)(nil)
