// Package completion turns context token types into completion categories.
//
// A grammar engine probing an empty or partial cursor position answers with
// context tokens (token.Ctx*). Those never carry scanned text; they only
// say which category of identifier or keyword would be syntactically valid
// there. This package classifies them so a completer can decide whether to
// offer schema object names, a fresh-name placeholder, or a fixed keyword
// vocabulary.
package completion

import (
	"github.com/leapstack-labs/sqlstream/pkg/keywords"
	"github.com/leapstack-labs/sqlstream/pkg/token"
)

// Kind describes what a completion context asks for.
type Kind int

// Completion context kinds.
const (
	KindUnknown    Kind = iota
	KindObjectRef       // name of an existing schema object
	KindNewName         // name being defined for a new object
	KindVocabulary      // one of a fixed keyword set
	KindFreeForm        // unconstrained name or string
)

// ObjectType names the schema object class a context refers to.
type ObjectType int

// Schema object classes.
const (
	ObjectNone ObjectType = iota
	ObjectColumn
	ObjectTable
	ObjectDatabase
	ObjectIndex
	ObjectTrigger
	ObjectView
	ObjectConstraint
)

// Category is the completion classification of one context token type.
type Category struct {
	Kind       Kind
	Object     ObjectType // for KindObjectRef and KindNewName
	Candidates []string   // for KindVocabulary
}

// objectRefs maps existing-object contexts to the object class they
// reference.
var objectRefs = map[token.Type]ObjectType{
	token.CtxColumn:   ObjectColumn,
	token.CtxTable:    ObjectTable,
	token.CtxDatabase: ObjectDatabase,
	token.CtxIndex:    ObjectIndex,
	token.CtxTrigger:  ObjectTrigger,
	token.CtxView:     ObjectView,
}

// newNames maps new-name contexts to the object class being defined.
var newNames = map[token.Type]ObjectType{
	token.CtxTableNew:   ObjectTable,
	token.CtxIndexNew:   ObjectIndex,
	token.CtxViewNew:    ObjectView,
	token.CtxTriggerNew: ObjectTrigger,
	token.CtxColumnNew:  ObjectColumn,
	token.CtxConstraint: ObjectConstraint,
}

// Categorize classifies a context token type. Non-context types yield
// KindUnknown.
func Categorize(t token.Type) Category {
	if obj, ok := objectRefs[t]; ok {
		return Category{Kind: KindObjectRef, Object: obj}
	}
	if obj, ok := newNames[t]; ok {
		return Category{Kind: KindNewName, Object: obj}
	}

	switch t {
	case token.CtxJoinOpts:
		return Category{Kind: KindVocabulary, Candidates: keywords.JoinKeywords()}
	case token.CtxFkMatch:
		return Category{Kind: KindVocabulary, Candidates: keywords.FkMatchKeywords()}
	case token.CtxRowIDKw:
		return Category{Kind: KindVocabulary, Candidates: keywords.RowIDKeywords()}
	case token.CtxNewKw:
		return Category{Kind: KindVocabulary, Candidates: []string{"NEW"}}
	case token.CtxOldKw:
		return Category{Kind: KindVocabulary, Candidates: []string{"OLD"}}
	case token.CtxFunction, token.CtxCollation, token.CtxPragma, token.CtxAlias,
		token.CtxTransaction, token.CtxColumnType, token.CtxErrorMessage:
		return Category{Kind: KindFreeForm}
	}
	return Category{Kind: KindUnknown}
}

// Categories classifies every context token in the list, in order,
// skipping non-context tokens.
func Categories(list token.List) []Category {
	var out []Category
	for _, tok := range list {
		if tok.Type.IsContext() {
			out = append(out, Categorize(tok.Type))
		}
	}
	return out
}
