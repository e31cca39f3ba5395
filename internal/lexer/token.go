// Package lexer provides tokenization for KbuildMiner presence-condition
// expressions.
package lexer

import (
	"github.com/KernelHaven/KbuildMinerExtractor/internal/types"
)

// Token is a token with kind and source span.
type Token struct {
	Kind TokenKind
	Span types.Span
}

// NewToken creates a new token.
func NewToken(kind TokenKind, span types.Span) Token {
	return Token{Kind: kind, Span: span}
}

// TokenKind identifies a token type.
type TokenKind int

const (
	// TokError is a lexical error (an unexpected byte).
	TokError TokenKind = iota
	// TokEOF is end of input.
	TokEOF
	// TokIdent is a configuration variable name ([A-Za-z0-9_]+).
	TokIdent
	// TokNot is '!'.
	TokNot
	// TokAnd is '&&'.
	TokAnd
	// TokOr is '||'.
	TokOr
	// TokLParen is '('.
	TokLParen
	// TokRParen is ')'.
	TokRParen
)

// String returns the token kind name for diagnostics.
func (k TokenKind) String() string {
	switch k {
	case TokError:
		return "ERROR"
	case TokEOF:
		return "EOF"
	case TokIdent:
		return "IDENTIFIER"
	case TokNot:
		return "'!'"
	case TokAnd:
		return "'&&'"
	case TokOr:
		return "'||'"
	case TokLParen:
		return "'('"
	case TokRParen:
		return "')'"
	default:
		return "UNKNOWN"
	}
}
