package completion

import (
	"testing"

	"github.com/leapstack-labs/sqlstream/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizeObjectRefs(t *testing.T) {
	tests := []struct {
		typ    token.Type
		object ObjectType
	}{
		{token.CtxColumn, ObjectColumn},
		{token.CtxTable, ObjectTable},
		{token.CtxDatabase, ObjectDatabase},
		{token.CtxIndex, ObjectIndex},
		{token.CtxTrigger, ObjectTrigger},
		{token.CtxView, ObjectView},
	}

	for _, tt := range tests {
		cat := Categorize(tt.typ)
		assert.Equal(t, KindObjectRef, cat.Kind, "%s", tt.typ)
		assert.Equal(t, tt.object, cat.Object, "%s", tt.typ)
		assert.Empty(t, cat.Candidates)
	}
}

func TestObjectRefsAreDbObjectTypes(t *testing.T) {
	for typ := range objectRefs {
		assert.True(t, typ.IsDbObjectType(), "%s refers to an existing object", typ)
	}
	for typ := range newNames {
		assert.False(t, typ.IsDbObjectType(), "%s names an object that does not exist yet", typ)
	}
}

func TestCategorizeNewNames(t *testing.T) {
	tests := []struct {
		typ    token.Type
		object ObjectType
	}{
		{token.CtxTableNew, ObjectTable},
		{token.CtxIndexNew, ObjectIndex},
		{token.CtxViewNew, ObjectView},
		{token.CtxTriggerNew, ObjectTrigger},
		{token.CtxColumnNew, ObjectColumn},
		{token.CtxConstraint, ObjectConstraint},
	}

	for _, tt := range tests {
		cat := Categorize(tt.typ)
		assert.Equal(t, KindNewName, cat.Kind, "%s", tt.typ)
		assert.Equal(t, tt.object, cat.Object, "%s", tt.typ)
	}
}

func TestCategorizeVocabularies(t *testing.T) {
	join := Categorize(token.CtxJoinOpts)
	require.Equal(t, KindVocabulary, join.Kind)
	assert.Contains(t, join.Candidates, "JOIN")
	assert.Contains(t, join.Candidates, "NATURAL")

	match := Categorize(token.CtxFkMatch)
	require.Equal(t, KindVocabulary, match.Kind)
	assert.ElementsMatch(t, []string{"FULL", "NONE", "PARTIAL", "SIMPLE"}, match.Candidates)

	rowid := Categorize(token.CtxRowIDKw)
	require.Equal(t, KindVocabulary, rowid.Kind)
	assert.ElementsMatch(t, []string{"ROWID", "OID", "_ROWID_"}, rowid.Candidates)

	assert.Equal(t, []string{"NEW"}, Categorize(token.CtxNewKw).Candidates)
	assert.Equal(t, []string{"OLD"}, Categorize(token.CtxOldKw).Candidates)
}

func TestCategorizeFreeForm(t *testing.T) {
	freeForm := []token.Type{
		token.CtxFunction, token.CtxCollation, token.CtxPragma, token.CtxAlias,
		token.CtxTransaction, token.CtxColumnType, token.CtxErrorMessage,
	}

	for _, typ := range freeForm {
		cat := Categorize(typ)
		assert.Equal(t, KindFreeForm, cat.Kind, "%s", typ)
		assert.Equal(t, ObjectNone, cat.Object)
		assert.Empty(t, cat.Candidates)
	}
}

func TestCategorizeNonContext(t *testing.T) {
	for _, typ := range []token.Type{token.Keyword, token.Other, token.String, token.Operator, token.Invalid} {
		assert.Equal(t, KindUnknown, Categorize(typ).Kind, "%s", typ)
	}
}

func TestCategories(t *testing.T) {
	list := token.NewList(
		token.New(token.Keyword, "SELECT"),
		token.New(token.Space, " "),
		token.New(token.CtxColumn, ""),
		token.New(token.Space, " "),
		token.New(token.CtxJoinOpts, ""),
	)

	cats := Categories(list)
	require.Len(t, cats, 2, "non-context tokens are skipped")
	assert.Equal(t, KindObjectRef, cats[0].Kind)
	assert.Equal(t, ObjectColumn, cats[0].Object)
	assert.Equal(t, KindVocabulary, cats[1].Kind)

	assert.Empty(t, Categories(token.NewList(token.New(token.Keyword, "SELECT"))))
}
