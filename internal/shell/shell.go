// ============================================================================
// procline - typed procedure invocation from the command line
// ============================================================================
//
// Package:     shell
// Description: Line oriented shell that runs each input line as a procedure
//              invocation. Uses readline on a terminal and a plain reader
//              otherwise. History is kept in memory only.
// Author:      msto63
// Created:     2025-10-15
// License:     MIT
// ============================================================================

package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"

	mdwerror "github.com/msto63/procline/foundation/core/error"
	mdwlog "github.com/msto63/procline/foundation/core/log"
	"github.com/msto63/procline/foundation/tcol"
	"github.com/msto63/procline/foundation/tcol/executor"
	"github.com/msto63/procline/foundation/tcol/suggest"
)

// DefaultPrompt is shown when Options leaves Prompt empty
const DefaultPrompt = "> "

var builtins = []string{"alias", "exit", "help", "quit"}

// Options configures the shell
type Options struct {
	Prompt string

	// Interactive selects readline. Without it lines are read from In.
	Interactive bool

	In     io.Reader
	Out    io.Writer
	Logger *mdwlog.Logger

	// Describe returns the description of a procedure for help output
	Describe func(name string) string
}

// Shell reads command lines and runs them on a target
type Shell struct {
	engine  *tcol.Engine
	target  executor.Target
	options Options
	styles  Styles
	logger  *mdwlog.Logger
	failed  int
}

// New creates a shell
func New(engine *tcol.Engine, target executor.Target, opts Options) *Shell {
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	return &Shell{
		engine:  engine,
		target:  target,
		options: opts,
		styles:  NewStyles(lipgloss.NewRenderer(opts.Out)),
		logger:  opts.Logger.WithField("component", "procline-shell"),
	}
}

// Failed returns the number of lines that ended in an error
func (s *Shell) Failed() int {
	return s.failed
}

// Run reads lines until exit, end of input or interrupt
func (s *Shell) Run() error {
	if s.options.Interactive {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          s.options.Prompt,
			AutoComplete:    NewCompleter(s.engine),
			HistoryLimit:    100,
			InterruptPrompt: "^C",
			EOFPrompt:       "exit",
			Stdout:          s.options.Out,
		})
		if err == nil {
			defer rl.Close()
			return s.loop(rl.Readline)
		}
		s.logger.WarnWithErr("readline unavailable, falling back to plain input", err)
	}

	scanner := bufio.NewScanner(s.options.In)
	return s.loop(func() (string, error) {
		if scanner.Scan() {
			return scanner.Text(), nil
		}
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	})
}

func (s *Shell) loop(read func() (string, error)) error {
	for {
		line, err := read()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return nil
			}
			return err
		}
		if s.Handle(line) {
			return nil
		}
	}
}

// Handle runs one line and reports whether the shell should exit. Lines
// whose first word is a built-in are not passed to the engine.
func (s *Shell) Handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "exit", "quit":
		return true
	case "help":
		s.help(strings.Join(fields[1:], " "))
		return false
	case "alias":
		s.alias(fields[1:])
		return false
	}

	result, err := s.engine.Execute(line, s.target)
	if err != nil {
		s.fail(line, err)
		return false
	}
	fmt.Fprintln(s.options.Out, s.styles.OK.Render("ok")+" "+result.Invocation.Summary())
	return false
}

// Check parses and binds line and reports the result without running it
func (s *Shell) Check(line string) bool {
	inv, err := s.engine.Validate(line)
	if err != nil {
		s.fail(line, err)
		return false
	}
	fmt.Fprintln(s.options.Out, s.styles.OK.Render("valid")+" "+inv.Summary())
	return true
}

func (s *Shell) help(prefix string) {
	out := s.options.Out
	fmt.Fprintln(out, s.styles.Heading.Render("Procedures"))

	suggestions := s.engine.Suggest(prefix)
	if len(suggestions) == 0 {
		fmt.Fprintln(out, s.styles.Muted.Render("  no procedure matches "+prefix))
	}
	for _, sg := range suggestions {
		fmt.Fprintf(out, "  %s", s.highlight(sg))
		if s.options.Describe != nil {
			if d := s.options.Describe(sg.Name); d != "" {
				fmt.Fprintf(out, "  %s", s.styles.Muted.Render(d))
			}
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, s.styles.Heading.Render("Built-ins"))
	fmt.Fprintln(out, "  help [name]             list procedures")
	fmt.Fprintln(out, "  alias <existing> <new>  add a second name for a procedure")
	fmt.Fprintln(out, "  exit                    leave the shell")
}

// highlight renders the label with the matched part of the name styled
func (s *Shell) highlight(sg suggest.Suggestion) string {
	if sg.Start >= sg.End || sg.End > len(sg.Label) {
		return sg.Label
	}
	return sg.Label[:sg.Start] + s.styles.Match.Render(sg.Label[sg.Start:sg.End]) + sg.Label[sg.End:]
}

func (s *Shell) alias(args []string) {
	if len(args) != 2 {
		s.fail("", mdwerror.New("usage: alias <existing> <new>").WithCode(mdwerror.CodeSyntax))
		return
	}
	proc, err := s.engine.CreateAlias(args[0], args[1])
	if err != nil {
		s.fail("", err)
		return
	}
	fmt.Fprintln(s.options.Out, s.styles.OK.Render("ok")+" "+proc.Signature())
}

// fail prints err and, for positioned errors, the offending source line
// with a caret under the column
func (s *Shell) fail(source string, err error) {
	s.failed++
	out := s.options.Out
	fmt.Fprintln(out, s.styles.Error.Render("error:")+" "+err.Error())

	line, column, ok := mdwerror.GetPosition(err)
	if !ok || source == "" {
		return
	}
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return
	}
	text := strings.ReplaceAll(lines[line-1], "\t", " ")
	fmt.Fprintln(out, "  "+text)
	fmt.Fprintln(out, "  "+strings.Repeat(" ", column)+s.styles.Caret.Render("^"))
}
