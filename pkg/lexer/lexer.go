// Package lexer tokenizes SQLite SQL into the lossless token model of
// pkg/token. Whitespace and comments are emitted as regular tokens with no
// gaps between spans, so detokenizing the produced list reproduces the
// input exactly.
package lexer

import (
	"strings"
	"unicode"

	"github.com/leapstack-labs/sqlstream/pkg/keywords"
	"github.com/leapstack-labs/sqlstream/pkg/token"
)

// Lexer walks a SQL string and produces tokens.
//
// Offsets are rune positions, not byte offsets, matching the cursor
// positions an editor works with.
type Lexer struct {
	input   []rune
	pos     int  // current position in input
	readPos int  // reading position (after current rune)
	ch      rune // current rune under examination, 0 at end

	// Tolerant collects validity markers for tokens built from incomplete
	// constructs (unterminated comment, string, blob, quoted name) that
	// scanning recovered from instead of rejecting.
	Tolerant []token.Tolerant
}

// New creates a Lexer for the given input.
func New(input string) *Lexer {
	l := &Lexer{input: []rune(input)}
	l.readChar()
	return l
}

// readChar advances to the next rune.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

// peekChar returns the next rune without advancing.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// emit builds a token whose value is the verbatim input since start.
func (l *Lexer) emit(typ token.Type, start int) *token.Token {
	return token.NewSpanned(typ, string(l.input[start:l.pos]), int64(start), int64(l.pos-1))
}

// tolerate records the invalid marker for a recovered token.
func (l *Lexer) tolerate(tok *token.Token) *token.Token {
	l.Tolerant = append(l.Tolerant, token.NewTolerant(tok, true))
	return tok
}

// Next returns the next token. At end of input it returns a synthetic
// token of the invalid/end type with an empty value.
func (l *Lexer) Next() *token.Token {
	start := l.pos

	switch {
	case l.ch == 0:
		return token.New(token.Invalid, "")
	case isSpace(l.ch):
		for isSpace(l.ch) {
			l.readChar()
		}
		return l.emit(token.Space, start)
	case l.ch == '-' && l.peekChar() == '-':
		return l.readLineComment(start)
	case l.ch == '/' && l.peekChar() == '*':
		return l.readBlockComment(start)
	case l.ch == '\'':
		return l.readString(start)
	case (l.ch == 'x' || l.ch == 'X') && l.peekChar() == '\'':
		return l.readBlob(start)
	case l.ch == '"' || l.ch == '`':
		return l.readQuotedName(start, l.ch)
	case l.ch == '[':
		return l.readBracketName(start)
	case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())):
		return l.readNumber(start)
	case isNameStart(l.ch):
		return l.readName(start)
	case l.ch == '?':
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
		return l.emit(token.BindParam, start)
	case l.ch == ':' || l.ch == '@' || l.ch == '$':
		if !isNameStart(l.peekChar()) && !isDigit(l.peekChar()) {
			l.readChar()
			return l.tolerate(l.emit(token.Invalid, start))
		}
		l.readChar()
		for isNameChar(l.ch) {
			l.readChar()
		}
		return l.emit(token.BindParam, start)
	case l.ch == '(':
		l.readChar()
		return l.emit(token.ParLeft, start)
	case l.ch == ')':
		l.readChar()
		return l.emit(token.ParRight, start)
	default:
		return l.readOperator(start)
	}
}

// All returns all tokens of the input as a list. The synthetic end token is
// not included, so detokenizing the list reproduces the input.
func (l *Lexer) All() token.List {
	var list token.List
	for {
		tok := l.Next()
		if tok.Type == token.Invalid && tok.Start < 0 {
			return list
		}
		list = append(list, tok)
	}
}

// Tokenize returns all tokens of the input.
func Tokenize(input string) token.List {
	return New(input).All()
}

// readLineComment scans a -- comment up to, not including, the line break.
func (l *Lexer) readLineComment(start int) *token.Token {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	return l.emit(token.Comment, start)
}

// readBlockComment scans a /* */ comment. A comment left open at the end of
// the input is tolerated and marked invalid.
func (l *Lexer) readBlockComment(start int) *token.Token {
	l.readChar() // /
	l.readChar() // *
	for l.ch != 0 {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return l.emit(token.Comment, start)
		}
		l.readChar()
	}
	return l.tolerate(l.emit(token.Comment, start))
}

// readString scans a single-quoted string literal with doubled-quote
// escapes. The token value is the dequoted content while the span covers
// the quoted source form. An unterminated literal is emitted verbatim as
// an invalid token so the surface form survives.
func (l *Lexer) readString(start int) *token.Token {
	l.readChar() // opening quote

	var value strings.Builder
	for l.ch != 0 {
		if l.ch == '\'' {
			if l.peekChar() == '\'' {
				value.WriteRune('\'')
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar() // closing quote
			return token.NewSpanned(token.String, value.String(), int64(start), int64(l.pos-1))
		}
		value.WriteRune(l.ch)
		l.readChar()
	}
	return l.tolerate(l.emit(token.Invalid, start))
}

// readBlob scans an X'...' blob literal, kept verbatim.
func (l *Lexer) readBlob(start int) *token.Token {
	l.readChar() // x
	l.readChar() // opening quote
	for l.ch != 0 {
		if l.ch == '\'' {
			l.readChar()
			return l.emit(token.Blob, start)
		}
		l.readChar()
	}
	return l.tolerate(l.emit(token.Invalid, start))
}

// readQuotedName scans a "name" or `name` quoted identifier, kept verbatim
// including quotes. Doubled quote characters stay inside the name.
func (l *Lexer) readQuotedName(start int, quote rune) *token.Token {
	l.readChar() // opening quote
	for l.ch != 0 {
		if l.ch == quote {
			if l.peekChar() == quote {
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar()
			return l.emit(token.Other, start)
		}
		l.readChar()
	}
	return l.tolerate(l.emit(token.Invalid, start))
}

// readBracketName scans a [name] quoted identifier, kept verbatim.
func (l *Lexer) readBracketName(start int) *token.Token {
	l.readChar() // [
	for l.ch != 0 {
		if l.ch == ']' {
			l.readChar()
			return l.emit(token.Other, start)
		}
		l.readChar()
	}
	return l.tolerate(l.emit(token.Invalid, start))
}

// readNumber scans an integer (decimal or 0x hex) or a float with optional
// fraction and exponent.
func (l *Lexer) readNumber(start int) *token.Token {
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		l.readChar()
		l.readChar()
		for isHexDigit(l.ch) {
			l.readChar()
		}
		return l.emit(token.Integer, start)
	}

	isFloat := false
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' {
		isFloat = true
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		if next := l.peekChar(); isDigit(next) || next == '+' || next == '-' {
			isFloat = true
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}

	if isFloat {
		return l.emit(token.Float, start)
	}
	return l.emit(token.Integer, start)
}

// readName scans an unquoted identifier and classifies it against the
// keyword set.
func (l *Lexer) readName(start int) *token.Token {
	for isNameChar(l.ch) {
		l.readChar()
	}
	value := string(l.input[start:l.pos])
	typ := token.Other
	if keywords.IsKeyword(value) {
		typ = token.Keyword
	}
	return token.NewSpanned(typ, value, int64(start), int64(l.pos-1))
}

// operators2 are the two-rune operators, checked before the single-rune
// set so the longest match wins.
var operators2 = map[string]struct{}{
	"||": {}, "<<": {}, ">>": {}, "<=": {}, ">=": {},
	"==": {}, "!=": {}, "<>": {},
}

// operators1 are the single-rune operators.
var operators1 = map[rune]struct{}{
	'+': {}, '-': {}, '*': {}, '/': {}, '%': {}, '=': {},
	'<': {}, '>': {}, '&': {}, '|': {}, '~': {}, ',': {},
	';': {}, '.': {},
}

// readOperator scans an operator, or an invalid token for a rune with no
// meaning in SQLite.
func (l *Lexer) readOperator(start int) *token.Token {
	pair := string(l.ch) + string(l.peekChar())
	if _, ok := operators2[pair]; ok {
		l.readChar()
		l.readChar()
		return l.emit(token.Operator, start)
	}
	if _, ok := operators1[l.ch]; ok {
		l.readChar()
		return l.emit(token.Operator, start)
	}
	l.readChar()
	return l.tolerate(l.emit(token.Invalid, start))
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isNameStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isNameChar(ch rune) bool {
	return isNameStart(ch) || isDigit(ch) || ch == '$'
}
