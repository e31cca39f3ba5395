package lexer

import (
	"log/slog"

	"github.com/KernelHaven/KbuildMinerExtractor/internal/types"
)

// Lexer tokenizes one presence-condition expression.
type Lexer struct {
	source []byte
	pos    int
	types.Logger
}

// New returns a Lexer that tokenizes the given expression bytes.
// Pass nil for logger to disable logging.
func New(source []byte, logger *slog.Logger) *Lexer {
	return &Lexer{
		source: source,
		Logger: types.Logger{L: logger},
	}
}

// Tokenize consumes all input and returns the token stream,
// terminated by a TokEOF token.
func (l *Lexer) Tokenize() []Token {
	tokens := make([]Token, 0, max(len(l.source)/4, 8))
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokEOF {
			break
		}
	}
	l.Log(slog.LevelDebug, "tokenization complete", slog.Int("tokens", len(tokens)))
	return tokens
}

// NextToken advances the lexer and returns the next token.
// Returns TokEOF when all input is consumed. Unexpected bytes produce a
// TokError token spanning the offending byte; a lone '&' or '|' produces
// a TokError as well.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	start := l.pos
	b, ok := l.advance()
	if !ok {
		return l.token(TokEOF, start)
	}

	switch {
	case b == '!':
		return l.token(TokNot, start)
	case b == '(':
		return l.token(TokLParen, start)
	case b == ')':
		return l.token(TokRParen, start)
	case b == '&':
		if next, ok := l.peek(); ok && next == '&' {
			l.advance()
			return l.token(TokAnd, start)
		}
		return l.token(TokError, start)
	case b == '|':
		if next, ok := l.peek(); ok && next == '|' {
			l.advance()
			return l.token(TokOr, start)
		}
		return l.token(TokError, start)
	case isIdentByte(b):
		for {
			next, ok := l.peek()
			if !ok || !isIdentByte(next) {
				break
			}
			l.advance()
		}
		return l.token(TokIdent, start)
	default:
		return l.token(TokError, start)
	}
}

// Text returns the source text covered by the given token.
func (l *Lexer) Text(tok Token) string {
	return string(l.source[tok.Span.Start:tok.Span.End])
}

func isIdentByte(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_'
}

func (l *Lexer) peek() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	return l.source[l.pos], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	b := l.source[l.pos]
	l.pos++
	return b, true
}

func (l *Lexer) skipWhitespace() {
	for {
		b, ok := l.peek()
		if !ok {
			return
		}
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' {
			l.advance()
		} else {
			return
		}
	}
}

func (l *Lexer) token(kind TokenKind, start int) Token {
	tok := Token{Kind: kind, Span: types.NewSpan(types.ByteOffset(start), types.ByteOffset(l.pos))}
	if l.TraceEnabled() {
		l.Trace("token",
			slog.String("kind", tok.Kind.String()),
			slog.Int("start", int(tok.Span.Start)),
			slog.Int("end", int(tok.Span.End)))
	}
	return tok
}
