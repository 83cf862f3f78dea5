package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsKeyword(t *testing.T) {
	assert.True(t, IsKeyword("select"))
	assert.True(t, IsKeyword("SELECT"))
	assert.True(t, IsKeyword("Select"))
	assert.True(t, IsKeyword("autoincrement"))
	assert.True(t, IsKeyword("without"))

	assert.False(t, IsKeyword("users"))
	assert.False(t, IsKeyword(""))
	assert.False(t, IsKeyword("selec"))
}

func TestAll(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)
	assert.Contains(t, all, "SELECT")
	assert.Contains(t, all, "VACUUM")

	for _, kw := range all {
		assert.True(t, IsKeyword(kw), "%s must round-trip through IsKeyword", kw)
	}
}

func TestJoinKeywords(t *testing.T) {
	join := JoinKeywords()
	assert.Contains(t, join, "JOIN")
	assert.Contains(t, join, "NATURAL")
	assert.Contains(t, join, "OUTER")
	assert.NotContains(t, join, "WHERE")
}

func TestFkMatchKeywords(t *testing.T) {
	match := FkMatchKeywords()
	assert.ElementsMatch(t, []string{"FULL", "NONE", "PARTIAL", "SIMPLE"}, match)
}

func TestRowIDKeywords(t *testing.T) {
	assert.ElementsMatch(t, []string{"ROWID", "OID", "_ROWID_"}, RowIDKeywords())

	assert.True(t, IsRowIDKeyword("rowid"))
	assert.True(t, IsRowIDKeyword("OID"))
	assert.True(t, IsRowIDKeyword("_rowid_"))
	assert.False(t, IsRowIDKeyword("id"))
}

func TestVocabulariesAreCopies(t *testing.T) {
	join := JoinKeywords()
	join[0] = "MODIFIED"
	assert.NotContains(t, JoinKeywords(), "MODIFIED")
}
