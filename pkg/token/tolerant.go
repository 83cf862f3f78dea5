package token

// Tolerant marks a token that originates from an incomplete lexical
// construct the lexer chose to recover from rather than reject, like a
// block comment opened at the end of the input and never closed.
//
// The Invalid flag is a data marker, not an error: consumers decide policy,
// e.g. a highlighter marks the covered region as invalid. The wrapped token
// keeps its pointer identity, so it participates in lists and identity
// lookups like any other token.
type Tolerant struct {
	*Token
	Invalid bool
}

// NewTolerant wraps a token with its validity marker.
func NewTolerant(tok *Token, invalid bool) Tolerant {
	return Tolerant{Token: tok, Invalid: invalid}
}
