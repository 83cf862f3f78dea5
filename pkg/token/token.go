// Package token defines the lossless lexical token model for SQL source.
//
// Tokens are produced by a lexer splitting a query string into isolated
// parts: names, numbers, operators, strings, keywords, comments, and so on.
// Whitespace and comments are regular tokens, so a token sequence can always
// be joined back into the exact original query text.
//
// Besides the syntactic types there is a second family of context types
// (Ctx*). Those are never produced by scanning real text; a grammar engine
// emits them when probing what category of identifier or keyword would be
// valid at a cursor position, and a completion layer turns them into
// suggestions.
package token

import (
	"fmt"
	"strings"
)

// Type classifies a token.
type Type int32

// Syntactic types describe what was actually scanned. Context types (Ctx*)
// describe what would be syntactically valid at an empty or partial cursor
// position.
const (
	Invalid Type = iota // invalid input, or no more tokens available
	Other               // a name, a word
	String              // string literal; Value is stripped of the surrounding quotes
	Comment             // a comment, including the starting/ending markers
	Float               // a decimal number
	Integer             // an integer number
	BindParam           // a bind parameter (:param, @param, $param or ?)
	Operator            // an operator (";", "+", ",", ...)
	ParLeft             // "("
	ParRight            // ")"
	Space               // whitespace run, including newlines and tabs
	Blob                // literal BLOB value (X'...')
	Keyword             // a keyword (see the keywords package)

	CtxColumn       // existing column name is valid here
	CtxTable        // existing table name is valid here
	CtxDatabase     // existing database name is valid here
	CtxFunction     // function name is valid here
	CtxCollation    // collation name is valid here
	CtxIndex        // existing index name is valid here
	CtxTrigger      // existing trigger name is valid here
	CtxView         // existing view name is valid here
	CtxJoinOpts     // JOIN keywords are valid here
	CtxTableNew     // name for a new table is valid here
	CtxIndexNew     // name for a new index is valid here
	CtxViewNew      // name for a new view is valid here
	CtxTriggerNew   // name for a new trigger is valid here
	CtxAlias        // alias name is valid here
	CtxTransaction  // transaction name is valid here
	CtxColumnNew    // name for a new column is valid here
	CtxColumnType   // data type for a new column is valid here
	CtxConstraint   // name for a new constraint is valid here
	CtxFkMatch      // foreign key MATCH keywords are valid here
	CtxPragma       // pragma name is valid here
	CtxRowIDKw      // a ROWID keyword is valid here
	CtxNewKw        // the NEW keyword is valid here
	CtxOldKw        // the OLD keyword is valid here
	CtxErrorMessage // error message string is valid here
)

// class captures per-type capabilities. Classification lives next to the
// type definitions so a new type added with the right flags is picked up by
// every predicate without touching them.
type class uint8

const (
	classWhitespace class = 1 << iota // insignificant to the grammar
	classSeparating                   // structural boundary token
	classDbObject                     // references an existing database object
	classContext                      // completion probe marker, never scanned
)

// typeDefs binds every type to its symbolic name and classification.
// The names are a stable debug contract; see Token.String.
var typeDefs = map[Type]struct {
	name  string
	class class
}{
	Invalid:   {"INVALID", 0},
	Other:     {"OTHER", classDbObject},
	String:    {"STRING", 0},
	Comment:   {"COMMENT", classWhitespace},
	Float:     {"FLOAT", 0},
	Integer:   {"INTEGER", 0},
	BindParam: {"BIND_PARAM", 0},
	Operator:  {"OPERATOR", classSeparating},
	ParLeft:   {"PAR_LEFT", classSeparating},
	ParRight:  {"PAR_RIGHT", classSeparating},
	Space:     {"SPACE", classWhitespace},
	Blob:      {"BLOB", 0},
	Keyword:   {"KEYWORD", 0},

	CtxColumn:       {"CTX_COLUMN", classContext | classDbObject},
	CtxTable:        {"CTX_TABLE", classContext | classDbObject},
	CtxDatabase:     {"CTX_DATABASE", classContext | classDbObject},
	CtxFunction:     {"CTX_FUNCTION", classContext},
	CtxCollation:    {"CTX_COLLATION", classContext},
	CtxIndex:        {"CTX_INDEX", classContext | classDbObject},
	CtxTrigger:      {"CTX_TRIGGER", classContext | classDbObject},
	CtxView:         {"CTX_VIEW", classContext | classDbObject},
	CtxJoinOpts:     {"CTX_JOIN_OPTS", classContext},
	CtxTableNew:     {"CTX_TABLE_NEW", classContext},
	CtxIndexNew:     {"CTX_INDEX_NEW", classContext},
	CtxViewNew:      {"CTX_VIEW_NEW", classContext},
	CtxTriggerNew:   {"CTX_TRIGGER_NEW", classContext},
	CtxAlias:        {"CTX_ALIAS", classContext},
	CtxTransaction:  {"CTX_TRANSACTION", classContext},
	CtxColumnNew:    {"CTX_COLUMN_NEW", classContext},
	CtxColumnType:   {"CTX_COLUMN_TYPE", classContext},
	CtxConstraint:   {"CTX_CONSTRAINT", classContext},
	CtxFkMatch:      {"CTX_FK_MATCH", classContext},
	CtxPragma:       {"CTX_PRAGMA", classContext},
	CtxRowIDKw:      {"CTX_ROWID_KW", classContext},
	CtxNewKw:        {"CTX_NEW_KW", classContext},
	CtxOldKw:        {"CTX_OLD_KW", classContext},
	CtxErrorMessage: {"CTX_ERROR_MESSAGE", classContext},
}

// String returns the symbolic name of the type.
func (t Type) String() string {
	if def, ok := typeDefs[t]; ok {
		return def.name
	}
	return fmt.Sprintf("TYPE(%d)", int32(t))
}

func (t Type) is(c class) bool {
	return typeDefs[t].class&c != 0
}

// IsWhitespace reports whether the type is insignificant to the SQL grammar.
// Comments count as whitespace exactly like space runs.
func (t Type) IsWhitespace() bool {
	return t.is(classWhitespace)
}

// IsSeparating reports whether the type is a structural token (an operator
// or a parenthesis), useful to spot clause and statement boundaries without
// parsing.
func (t Type) IsSeparating() bool {
	return t.is(classSeparating)
}

// IsDbObjectType reports whether the type denotes the name of an existing
// database object: the generic name type, or any context type referring to
// an existing column, table, database, index, trigger, or view. Context
// types for names being newly defined are excluded.
func (t Type) IsDbObjectType() bool {
	return t.is(classDbObject)
}

// IsContext reports whether the type is a completion probe marker rather
// than something a lexer can produce.
func (t Type) IsContext() bool {
	return t.is(classContext)
}

// Case selects case handling for value lookups.
type Case int

// Value lookup case modes.
const (
	CaseSensitive Case = iota
	CaseInsensitive
)

func (c Case) equal(a, b string) bool {
	if c == CaseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// Token is one lexical unit of a query string. It is treated as immutable
// once built and is shared by pointer: the same token may sit in several
// lists and in syntax tree nodes at the same time, and identity-based List
// operations rely on that pointer staying stable.
//
// Start and End are inclusive character offsets into the source string.
// Both are -1 for a synthetic token not tied to source text.
type Token struct {
	Type      Type
	Value     string
	Start     int64
	End       int64
	GrammarID int // opaque grammar terminal id; 0 when not produced by grammar reduction
}

// New creates a synthetic token with no source position.
func New(typ Type, value string) *Token {
	return &Token{Type: typ, Value: value, Start: -1, End: -1}
}

// NewSpanned creates a token covering the inclusive character range
// [start, end] of the source string.
func NewSpanned(typ Type, value string, start, end int64) *Token {
	return &Token{Type: typ, Value: value, Start: start, End: end}
}

// NewTerminal creates a fully specified token carrying the grammar terminal
// id assigned by the grammar engine. Outside of grammar reduction code the
// other constructors are the ones to use.
func NewTerminal(grammarID int, typ Type, value string, start, end int64) *Token {
	return &Token{Type: typ, Value: value, Start: start, End: end, GrammarID: grammarID}
}

// IsWhitespace reports whether the token is whitespace or a comment.
func (t *Token) IsWhitespace() bool { return t.Type.IsWhitespace() }

// IsSeparating reports whether the token is an operator or a parenthesis.
func (t *Token) IsSeparating() bool { return t.Type.IsSeparating() }

// IsDbObjectType reports whether the token denotes an existing database
// object name.
func (t *Token) IsDbObjectType() bool { return t.Type.IsDbObjectType() }

// Equal reports whether both tokens have the same type, value, start and
// end. The grammar id is deliberately excluded: a token round-tripped
// through serialization without one still compares equal to its origin.
func (t *Token) Equal(other *Token) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Type == other.Type && t.Value == other.Value && t.Start == other.Start && t.End == other.End
}

// Less orders tokens by source position, start dominant, end conclusive on
// ties. It restores source order for tokens gathered from independent
// passes.
func (t *Token) Less(other *Token) bool {
	if t.Start != other.Start {
		return t.Start < other.Start
	}
	return t.End < other.End
}

// Contains reports whether the inclusive [Start, End] span covers the given
// character position. Synthetic tokens cover nothing.
func (t *Token) Contains(pos int64) bool {
	return t.Start >= 0 && t.Start <= pos && pos <= t.End
}

// Surface returns the original lexical surface form of the token. String
// literal values are stored dequoted, so quoting is re-applied here; every
// other type keeps its value verbatim.
func (t *Token) Surface() string {
	if t.Type == String {
		return "'" + strings.ReplaceAll(t.Value, "'", "''") + "'"
	}
	return t.Value
}

// String serializes the token as {typeName value start end}. The shape is a
// stable contract for tooling comparing token dumps.
func (t *Token) String() string {
	return fmt.Sprintf("{%s %s %d %d}", t.Type, t.Value, t.Start, t.End)
}
