package flashpoint

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "output.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileDatasetLoadsRecordsSkippingBlankLines(t *testing.T) {
	path := writeTemp(t, `{"srno":"FP1","title":"Cash flow crunch","zone":"Finance"}

{"srno":"FP2","title":"Team attrition","zone":"HR"}
`)

	records, err := NewFileDataset(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "FP1", records[0].Srno)
	assert.Equal(t, "HR", records[1].Zone)
}

func TestFileDatasetToleratesExtraFields(t *testing.T) {
	path := writeTemp(t, `{"srno":"FP1","title":"Cash flow crunch","zone":"Finance","severity":"high","notes":["a","b"]}`)

	records, err := NewFileDataset(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Cash flow crunch", records[0].Title)
}

func TestFileDatasetMissingFile(t *testing.T) {
	records, err := NewFileDataset(filepath.Join(t.TempDir(), "absent.jsonl")).Load(context.Background())
	assert.Error(t, err)
	assert.Empty(t, records)
}

func TestFileDatasetMalformedLine(t *testing.T) {
	path := writeTemp(t, `{"srno":"FP1","title":"ok","zone":"Finance"}
{not json}`)

	records, err := NewFileDataset(path).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Empty(t, records)
}
