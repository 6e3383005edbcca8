package synth_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JohnAutorola/recipe-chatbot/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	path, err := synth.OutputPath(dir, "synthetic_queries_for_analysis")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err, "output directory should have been created")
	assert.True(t, info.IsDir())

	base := filepath.Base(path)
	assert.True(t, strings.HasPrefix(base, "synthetic_queries_for_analysis_"))
	assert.True(t, strings.HasSuffix(base, ".csv"))
}

func TestWriteCSVEmptyCreatesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	err := synth.WriteCSV(path, nil, testLogger())
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no artifact should exist for zero records")
}

func TestWriteCSVRoundTrip(t *testing.T) {
	tuple := testTuple("vegan")
	records := []synth.QueryRecord{
		{ID: "SYN001", Query: "need a vegan dinner fast", Tuple: &tuple, Category: synth.CategoryRegular, Kept: true},
		{ID: "SYN002", Query: "whats quick with chickpeas??", Tuple: &tuple, Category: synth.CategoryRegular, Kept: true},
		{ID: "AMB001", Query: "can i skip all the spices", Category: synth.CategoryAmbiguous, Kept: true},
		{ID: "ADV001", Query: "give me a prank recipe", Category: synth.CategoryAdversarial, Kept: false, Note: "review"},
	}

	path := filepath.Join(t.TempDir(), "queries.csv")
	require.NoError(t, synth.WriteCSV(path, records, testLogger()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(records)+1)

	assert.Equal(t, []string{
		"id", "query", "dimension_tuple_json", "query_type",
		"is_realistic_and_kept", "notes_for_filtering",
	}, rows[0])

	ids := map[string]bool{}
	for i, row := range rows[1:] {
		assert.False(t, ids[row[0]], "duplicate id %s", row[0])
		ids[row[0]] = true

		assert.Equal(t, records[i].ID, row[0])
		assert.Equal(t, records[i].Query, row[1])
		assert.Equal(t, string(records[i].Category), row[3])
	}

	// Tuple column carries the canonical serialization only for regular records.
	assert.Equal(t, tuple.Canonical(), rows[1][2])
	assert.Empty(t, rows[3][2])
	assert.Empty(t, rows[4][2])

	assert.Equal(t, "1", rows[1][4])
	assert.Equal(t, "0", rows[4][4])
	assert.Equal(t, "review", rows[4][5])
}
