package flashpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONArrayFromProse(t *testing.T) {
	raw := "Here is the result:\n[{\"srno\":\"FP2\",\"title\":\"Team attrition\",\"zone\":\"HR\",\"score\":5,\"explanation\":\"Matches attrition language\"}]\nDone."

	var got []ShortlistEntry
	require.NoError(t, ExtractJSONArray(raw, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "FP2", got[0].Srno)
	assert.Equal(t, "Team attrition", got[0].Title)
	assert.Equal(t, 5, got[0].Score)
}

func TestExtractJSONArrayFromMarkdownFence(t *testing.T) {
	raw := "```json\n[{\"zone\":\"HR\",\"score\":4,\"explanation\":\"hiring talk\"}]\n```"

	var got []ZoneEntry
	require.NoError(t, ExtractJSONArray(raw, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "HR", got[0].Zone)
	assert.Equal(t, 4, got[0].Score)
}

func TestExtractJSONArrayMissingBrackets(t *testing.T) {
	var got []ShortlistEntry

	err := ExtractJSONArray("no json here at all", &got)
	assert.ErrorIs(t, err, ErrNoJSONArray)
	assert.Nil(t, got)

	err = ExtractJSONArray("opens [ but never closes", &got)
	assert.ErrorIs(t, err, ErrNoJSONArray)

	err = ExtractJSONArray("] closes before it opens [", &got)
	assert.ErrorIs(t, err, ErrNoJSONArray)
}

func TestExtractJSONArrayUnparseableSlice(t *testing.T) {
	var got []ShortlistEntry
	err := ExtractJSONArray("result: [not valid json]", &got)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestExtractJSONArrayBareObjectFails(t *testing.T) {
	// Zone contract is an array; a bare object has no brackets to scan.
	var got []ZoneEntry
	err := ExtractJSONArray(`{"zone":"HR","score":5,"explanation":"x"}`, &got)
	assert.ErrorIs(t, err, ErrNoJSONArray)
}
