// File: parser.go
// Title: TCOL Recursive Descent Parser
// Description: Converts the token stream of one command line into an
//              ast.Command. Rejects blank and overlong input and reports
//              syntax errors with the position of the offending token.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2025-10-15 v0.2.0: Procedure call grammar, NFC normalization

package parser

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	mdwerror "github.com/msto63/procline/foundation/core/error"
	mdwlog "github.com/msto63/procline/foundation/core/log"
	mdwast "github.com/msto63/procline/foundation/tcol/ast"
)

// DefaultMaxInputLength is used when Options.MaxInputLength is zero
const DefaultMaxInputLength = 4096

// Parser implements recursive descent parsing for command lines. A Parser
// is not safe for concurrent use.
type Parser struct {
	lexer   *Lexer
	current Token
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int // in bytes
}

// New creates a new parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "tcol-parser"),
		options: opts,
	}
}

// Parse parses one command line
func (p *Parser) Parse(input string) (*mdwast.Command, error) {
	if strings.TrimLeft(input, " \t\r\n") == "" {
		return nil, mdwerror.New("empty command").
			WithCode(mdwerror.CodeEmptyCommand).
			WithPosition(1, 0)
	}
	if len(input) > p.options.MaxInputLength {
		return nil, mdwerror.Newf("input exceeds maximum length: %d > %d",
			len(input), p.options.MaxInputLength).
			WithCode(mdwerror.CodeInputTooLong).
			WithPosition(1, 0)
	}

	p.lexer = NewLexer(norm.NFC.String(input))
	p.advance()

	cmd, err := p.parseCommand()
	if err != nil {
		p.logger.Debug("parse failed", mdwlog.Fields{"input": input, "error": err.Error()})
		return nil, err
	}

	p.logger.Debug("parsed command", mdwlog.Fields{
		"name":   cmd.Name,
		"params": len(cmd.Params),
	})
	return cmd, nil
}

// parseCommand parses: Ident (positionalParam | namedParam)*
func (p *Parser) parseCommand() (*mdwast.Command, error) {
	if p.current.Type != TokenIdentifier {
		return nil, p.unexpected("expected command name")
	}

	cmd := &mdwast.Command{Name: p.current.Value, Pos: p.currentPosition()}
	p.advance()

	for p.current.Type != TokenEOF {
		var (
			param mdwast.Param
			err   error
		)
		switch {
		case p.current.Type == TokenMarker:
			param, err = p.parseNamedParam()
		case p.current.Type.IsValue():
			param = &mdwast.PositionalParam{Value: p.valueFromToken()}
			p.advance()
		default:
			err = p.unexpected("expected parameter")
		}
		if err != nil {
			return nil, err
		}
		cmd.Params = append(cmd.Params, param)
	}

	return cmd, nil
}

// parseNamedParam parses: '-' Ident ('=' value)?
func (p *Parser) parseNamedParam() (*mdwast.NamedParam, error) {
	param := &mdwast.NamedParam{Pos: p.currentPosition()}
	p.advance() // consume '-'

	if p.current.Type != TokenIdentifier {
		return nil, p.unexpected("expected parameter name after `-`")
	}
	param.Name = p.current.Value
	param.NamePos = p.currentPosition()
	p.advance()

	if p.current.Type != TokenEquals {
		return param, nil
	}
	p.advance() // consume '='

	if !p.current.Type.IsValue() {
		return nil, p.unexpected("expected value after `=`")
	}
	value := p.valueFromToken()
	param.Value = &value
	p.advance()

	return param, nil
}

func (p *Parser) valueFromToken() mdwast.Value {
	v := mdwast.Value{
		Raw:  p.current.Value,
		Text: p.current.Text,
		Pos:  p.currentPosition(),
	}
	switch p.current.Type {
	case TokenString:
		v.Kind = mdwast.ValueString
	case TokenInteger:
		v.Kind = mdwast.ValueInteger
	case TokenFloat:
		v.Kind = mdwast.ValueFloat
	default:
		v.Kind = mdwast.ValueIdent
	}
	return v
}

func (p *Parser) advance() {
	p.current = p.lexer.NextToken()
}

func (p *Parser) currentPosition() mdwast.Position {
	return mdwast.Position{
		Line:   p.current.Line,
		Column: p.current.Column,
		Offset: p.current.Position,
	}
}

// unexpected builds a syntax error at the current token. Illegal tokens
// report the lexer's reason instead of context.
func (p *Parser) unexpected(context string) *mdwerror.Error {
	var err *mdwerror.Error
	switch p.current.Type {
	case TokenIllegal:
		err = mdwerror.New(p.current.Text)
	case TokenEOF:
		err = mdwerror.Newf("%s, found end of input", context)
	default:
		err = mdwerror.Newf("%s, found `%s`", context, p.current.Value)
	}
	return err.WithCode(mdwerror.CodeSyntax).WithPosition(p.current.Line, p.current.Column)
}
