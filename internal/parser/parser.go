// Package parser parses KbuildMiner presence-condition expressions into
// logic formulas.
//
// The grammar is C-style boolean logic over bare identifiers:
//
//	expr := or
//	or   := and ('||' and)*
//	and  := unary ('&&' unary)*
//	unary:= '!' unary | '(' expr ')' | IDENT
//
// Parse errors carry the byte offset of the offending token within the
// expression text.
package parser

import (
	"fmt"
	"log/slog"

	"github.com/KernelHaven/KbuildMinerExtractor/internal/lexer"
	"github.com/KernelHaven/KbuildMinerExtractor/internal/types"
	"github.com/KernelHaven/KbuildMinerExtractor/logic"
)

// ExpressionError is a parse failure with the byte offset of the
// offending token within the expression text.
type ExpressionError struct {
	Offset int
	Msg    string
}

func (e *ExpressionError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// Parser parses presence-condition expressions for one conversion run.
// All formulas produced by the same Parser share interned variables
// through its VariableCache.
type Parser struct {
	cache  *VariableCache
	logger *slog.Logger
	types.Logger
}

// New returns a Parser backed by the given cache.
// Pass nil for logger to disable logging.
func New(cache *VariableCache, logger *slog.Logger) *Parser {
	if cache == nil {
		cache = NewVariableCache()
	}
	return &Parser{
		cache:  cache,
		logger: logger,
		Logger: types.Logger{L: logger},
	}
}

// Cache returns the variable cache shared by all formulas from this parser.
func (p *Parser) Cache() *VariableCache {
	return p.cache
}

// Parse parses one expression string into a Formula.
// Returns an *ExpressionError on malformed input.
func (p *Parser) Parse(text string) (logic.Formula, error) {
	e := &exprParser{
		source: []byte(text),
		cache:  p.cache,
	}
	e.lex = lexer.New(e.source, p.logger)
	e.next()

	f, err := e.parseDisjunction()
	if err != nil {
		return nil, err
	}
	if e.tok.Kind != lexer.TokEOF {
		return nil, e.errorf("unexpected %s after expression", e.tok.Kind)
	}

	if p.TraceEnabled() {
		p.Trace("expression parsed", slog.String("formula", f.String()))
	}
	return f, nil
}

// exprParser holds the per-expression state: one token of lookahead over
// the lexer, plus the session cache.
type exprParser struct {
	source []byte
	lex    *lexer.Lexer
	tok    lexer.Token
	cache  *VariableCache
}

func (e *exprParser) next() {
	e.tok = e.lex.NextToken()
}

func (e *exprParser) errorf(format string, args ...any) *ExpressionError {
	return &ExpressionError{
		Offset: int(e.tok.Span.Start),
		Msg:    fmt.Sprintf(format, args...),
	}
}

func (e *exprParser) parseDisjunction() (logic.Formula, error) {
	left, err := e.parseConjunction()
	if err != nil {
		return nil, err
	}
	for e.tok.Kind == lexer.TokOr {
		e.next()
		right, err := e.parseConjunction()
		if err != nil {
			return nil, err
		}
		left = logic.Or(left, right)
	}
	return left, nil
}

func (e *exprParser) parseConjunction() (logic.Formula, error) {
	left, err := e.parseUnary()
	if err != nil {
		return nil, err
	}
	for e.tok.Kind == lexer.TokAnd {
		e.next()
		right, err := e.parseUnary()
		if err != nil {
			return nil, err
		}
		left = logic.And(left, right)
	}
	return left, nil
}

func (e *exprParser) parseUnary() (logic.Formula, error) {
	switch e.tok.Kind {
	case lexer.TokNot:
		e.next()
		operand, err := e.parseUnary()
		if err != nil {
			return nil, err
		}
		return logic.Not(operand), nil

	case lexer.TokLParen:
		e.next()
		f, err := e.parseDisjunction()
		if err != nil {
			return nil, err
		}
		if e.tok.Kind != lexer.TokRParen {
			return nil, e.errorf("expected ')', found %s", e.tok.Kind)
		}
		e.next()
		return f, nil

	case lexer.TokIdent:
		name := e.lex.Text(e.tok)
		e.next()
		return e.cache.Get(name), nil

	case lexer.TokEOF:
		return nil, e.errorf("expected expression, found end of input")

	default:
		return nil, e.errorf("expected expression, found %s", e.tok.Kind)
	}
}
