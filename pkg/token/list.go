package token

import (
	"cmp"
	"slices"
	"strings"
)

// List is an ordered, mutable sequence of shared token references. The same
// token pointer may appear in several lists and in syntax tree nodes; most
// mutation operations locate tokens by that pointer identity, while the
// value-based searches compare with Token.Equal.
//
// Identity lookups that miss are silent no-ops reporting a zero result, so
// speculative edits need no existence pre-check. Index arguments, on the
// other hand, are a caller contract: passing an out-of-range index is a
// programming error, not a recoverable condition.
type List []*Token

// NewList builds a list over the given tokens.
func NewList(toks ...*Token) List {
	return List(toks)
}

// String serializes every token with Token.String and joins the results
// with single spaces. Like the per-token form, the shape is a stable
// contract for tooling comparing token dumps.
func (l List) String() string {
	return strings.Join(l.Strings(), " ")
}

// Strings serializes every token with Token.String.
func (l List) Strings() []string {
	out := make([]string, len(l))
	for i, tok := range l {
		out[i] = tok.String()
	}
	return out
}

// first returns the position and token of the first match, or (-1, nil).
func (l List) first(match func(*Token) bool) (int, *Token) {
	for i, tok := range l {
		if match(tok) {
			return i, tok
		}
	}
	return -1, nil
}

// last returns the position and token of the last match, or (-1, nil).
func (l List) last(match func(*Token) bool) (int, *Token) {
	for i := len(l) - 1; i >= 0; i-- {
		if match(l[i]) {
			return i, l[i]
		}
	}
	return -1, nil
}

func matchType(typ Type) func(*Token) bool {
	return func(tok *Token) bool { return tok.Type == typ }
}

func matchValue(value string, cs Case) func(*Token) bool {
	return func(tok *Token) bool { return cs.equal(tok.Value, value) }
}

func matchTypeValue(typ Type, value string, cs Case) func(*Token) bool {
	return func(tok *Token) bool { return tok.Type == typ && cs.equal(tok.Value, value) }
}

// IndexOf returns the position of the first occurrence of the exact token
// (pointer identity), or -1.
func (l List) IndexOf(tok *Token) int {
	return slices.Index(l, tok)
}

// IndexOfType returns the position of the first token of the given type,
// or -1.
func (l List) IndexOfType(typ Type) int {
	i, _ := l.first(matchType(typ))
	return i
}

// IndexOfValue returns the position of the first token with the given
// value, or -1.
func (l List) IndexOfValue(value string, cs Case) int {
	i, _ := l.first(matchValue(value, cs))
	return i
}

// IndexOfTypeValue returns the position of the first token with the given
// type and value, or -1.
func (l List) IndexOfTypeValue(typ Type, value string, cs Case) int {
	i, _ := l.first(matchTypeValue(typ, value, cs))
	return i
}

// LastIndexOf returns the position of the last occurrence of the exact
// token (pointer identity), or -1.
func (l List) LastIndexOf(tok *Token) int {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i] == tok {
			return i
		}
	}
	return -1
}

// LastIndexOfType returns the position of the last token of the given type,
// or -1.
func (l List) LastIndexOfType(typ Type) int {
	i, _ := l.last(matchType(typ))
	return i
}

// LastIndexOfValue returns the position of the last token with the given
// value, or -1.
func (l List) LastIndexOfValue(value string, cs Case) int {
	i, _ := l.last(matchValue(value, cs))
	return i
}

// LastIndexOfTypeValue returns the position of the last token with the
// given type and value, or -1.
func (l List) LastIndexOfTypeValue(typ Type, value string, cs Case) int {
	i, _ := l.last(matchTypeValue(typ, value, cs))
	return i
}

// Find returns the first token of the given type, or nil.
func (l List) Find(typ Type) *Token {
	_, tok := l.first(matchType(typ))
	return tok
}

// FindValue returns the first token with the given value, or nil.
func (l List) FindValue(value string, cs Case) *Token {
	_, tok := l.first(matchValue(value, cs))
	return tok
}

// FindTypeValue returns the first token with the given type and value,
// or nil.
func (l List) FindTypeValue(typ Type, value string, cs Case) *Token {
	_, tok := l.first(matchTypeValue(typ, value, cs))
	return tok
}

// FindLast returns the last token of the given type, or nil.
func (l List) FindLast(typ Type) *Token {
	_, tok := l.last(matchType(typ))
	return tok
}

// FindLastValue returns the last token with the given value, or nil.
func (l List) FindLastValue(value string, cs Case) *Token {
	_, tok := l.last(matchValue(value, cs))
	return tok
}

// FindLastTypeValue returns the last token with the given type and value,
// or nil.
func (l List) FindLastTypeValue(typ Type, value string, cs Case) *Token {
	_, tok := l.last(matchTypeValue(typ, value, cs))
	return tok
}

// AtCursorPosition returns the token whose inclusive [Start, End] span
// covers the given character position, or nil when the position falls
// between spans or past the list.
func (l List) AtCursorPosition(pos int64) *Token {
	_, tok := l.first(func(t *Token) bool { return t.Contains(pos) })
	return tok
}

// Filter returns the ordered subsequence of tokens matching the given type.
// The tokens are shared, not copied.
func (l List) Filter(typ Type) List {
	var out List
	for _, tok := range l {
		if tok.Type == typ {
			out = append(out, tok)
		}
	}
	return out
}

// FilterWhitespace returns the ordered subsequence of whitespace tokens
// (spaces and comments).
func (l List) FilterWhitespace() List {
	var out List
	for _, tok := range l {
		if tok.IsWhitespace() {
			out = append(out, tok)
		}
	}
	return out
}

// WithoutWhitespace returns the ordered subsequence of tokens that are not
// whitespace.
func (l List) WithoutWhitespace() List {
	var out List
	for _, tok := range l {
		if !tok.IsWhitespace() {
			out = append(out, tok)
		}
	}
	return out
}

// Mid returns a new list sharing the tokens from [pos, pos+length). A
// negative length takes everything from pos to the end, as does a length
// reaching past it.
func (l List) Mid(pos, length int) List {
	if length < 0 || pos+length > len(l) {
		length = len(l) - pos
	}
	out := make(List, length)
	copy(out, l[pos:pos+length])
	return out
}

// Insert splices the given tokens in at position i.
func (l *List) Insert(i int, toks ...*Token) {
	*l = slices.Insert(*l, i, toks...)
}

// Append adds the given tokens at the end of the list.
func (l *List) Append(toks ...*Token) {
	*l = append(*l, toks...)
}

// Replace removes length tokens at startIdx and splices the given tokens in
// their place.
func (l *List) Replace(startIdx, length int, with ...*Token) {
	*l = slices.Replace(*l, startIdx, startIdx+length, with...)
}

// ReplaceBetween resolves both endpoint tokens by identity and replaces the
// inclusive range between them with the given tokens, returning the number
// of tokens replaced. When either endpoint is missing, or startTok occurs
// after endTok, the list is left unchanged and 0 is returned.
func (l *List) ReplaceBetween(startTok, endTok *Token, with ...*Token) int {
	si := l.IndexOf(startTok)
	ei := l.IndexOf(endTok)
	if si < 0 || ei < 0 || si > ei {
		return 0
	}
	count := ei - si + 1
	*l = slices.Replace(*l, si, ei+1, with...)
	return count
}

// ReplaceToken resolves old by identity and substitutes the given tokens in
// its place. Reports whether a replacement happened.
func (l *List) ReplaceToken(old *Token, with ...*Token) bool {
	i := l.IndexOf(old)
	if i < 0 {
		return false
	}
	*l = slices.Replace(*l, i, i+1, with...)
	return true
}

// RemoveBetween resolves both endpoint tokens by identity and removes the
// inclusive range between them. Reports whether anything was removed; a
// missing endpoint or endpoints in the wrong order leave the list unchanged.
func (l *List) RemoveBetween(startTok, endTok *Token) bool {
	si := l.IndexOf(startTok)
	ei := l.IndexOf(endTok)
	if si < 0 || ei < 0 || si > ei {
		return false
	}
	*l = slices.Delete(*l, si, ei+1)
	return true
}

// RemoveFirst removes the first token of the given type. Reports whether
// one was found.
func (l *List) RemoveFirst(typ Type) bool {
	i := l.IndexOfType(typ)
	if i < 0 {
		return false
	}
	*l = slices.Delete(*l, i, i+1)
	return true
}

// TrimLeft drops whitespace tokens from the beginning of the list.
func (l *List) TrimLeft() *List {
	for len(*l) > 0 && (*l)[0].IsWhitespace() {
		*l = (*l)[1:]
	}
	return l
}

// TrimRight drops whitespace tokens from the end of the list.
func (l *List) TrimRight() *List {
	for len(*l) > 0 && (*l)[len(*l)-1].IsWhitespace() {
		*l = (*l)[:len(*l)-1]
	}
	return l
}

// Trim drops whitespace tokens from both ends of the list.
func (l *List) Trim() *List {
	return l.TrimLeft().TrimRight()
}

// TrimLeftMatching extends TrimLeft: after consuming whitespace it also
// drops one adjacent token if it matches both the given type and value,
// then consumes the whitespace around it. Used to strip a leading separator
// together with its surrounding whitespace.
func (l *List) TrimLeftMatching(typ Type, value string) *List {
	l.TrimLeft()
	if len(*l) > 0 && (*l)[0].Type == typ && (*l)[0].Value == value {
		*l = (*l)[1:]
		l.TrimLeft()
	}
	return l
}

// TrimRightMatching extends TrimRight the same way TrimLeftMatching extends
// TrimLeft.
func (l *List) TrimRightMatching(typ Type, value string) *List {
	l.TrimRight()
	if n := len(*l); n > 0 && (*l)[n-1].Type == typ && (*l)[n-1].Value == value {
		*l = (*l)[:n-1]
		l.TrimRight()
	}
	return l
}

// TrimMatching applies TrimLeftMatching and TrimRightMatching.
func (l *List) TrimMatching(typ Type, value string) *List {
	return l.TrimLeftMatching(typ, value).TrimRightMatching(typ, value)
}

// SortBySpan reorders the tokens in place into source order (start
// dominant, end conclusive), restoring positional order for tokens gathered
// from independent passes.
func (l List) SortBySpan() {
	slices.SortStableFunc(l, func(a, b *Token) int {
		if a.Start != b.Start {
			return cmp.Compare(a.Start, b.Start)
		}
		return cmp.Compare(a.End, b.End)
	})
}

// Detokenize reconstructs source text by concatenating each token's
// original lexical surface form in order. For a list produced purely by
// lexing this reproduces the lexed string exactly; after edits it yields
// the rewritten text.
func (l List) Detokenize() string {
	var sb strings.Builder
	for _, tok := range l {
		sb.WriteString(tok.Surface())
	}
	return sb.String()
}
