// Package keywords owns the fixed SQL vocabularies of the SQLite dialect:
// the full keyword set the lexer classifies against and the small keyword
// lists backing the fixed-vocabulary completion contexts (JOIN options,
// foreign key MATCH, ROWID aliases, NEW/OLD).
package keywords

import "strings"

// The keyword table lives in table_gen.go, regenerated with
// scripts/genkeywords from the published SQLite keyword list.

// joinKeywords are the keywords composing JOIN operators.
var joinKeywords = []string{
	"CROSS", "FULL", "INNER", "JOIN", "LEFT", "NATURAL", "OUTER", "RIGHT",
}

// fkMatchKeywords are the arguments accepted by foreign key MATCH clauses.
var fkMatchKeywords = []string{"FULL", "NONE", "PARTIAL", "SIMPLE"}

// rowIDKeywords are the implicit ROWID column aliases.
var rowIDKeywords = []string{"ROWID", "OID", "_ROWID_"}

// IsKeyword reports whether the word is a SQLite keyword. The check is
// case-insensitive.
func IsKeyword(word string) bool {
	_, ok := keywords[strings.ToLower(word)]
	return ok
}

// All returns the keyword set in uppercase, no particular order.
func All() []string {
	out := make([]string, 0, len(keywords))
	for kw := range keywords {
		out = append(out, strings.ToUpper(kw))
	}
	return out
}

// JoinKeywords returns the JOIN operator vocabulary.
func JoinKeywords() []string {
	return append([]string(nil), joinKeywords...)
}

// FkMatchKeywords returns the foreign key MATCH vocabulary.
func FkMatchKeywords() []string {
	return append([]string(nil), fkMatchKeywords...)
}

// RowIDKeywords returns the implicit ROWID column aliases.
func RowIDKeywords() []string {
	return append([]string(nil), rowIDKeywords...)
}

// IsRowIDKeyword reports whether the word aliases the implicit ROWID
// column. The check is case-insensitive.
func IsRowIDKeyword(word string) bool {
	for _, kw := range rowIDKeywords {
		if strings.EqualFold(kw, word) {
			return true
		}
	}
	return false
}
