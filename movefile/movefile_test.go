package movefile

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kgeller/shutbox/dice"
)

func mustRoll(t *testing.T, sum uint8) dice.Roll {
	t.Helper()
	roll, err := dice.FromValue(sum)
	require.NoError(t, err)
	return roll
}

func sampleTable(t *testing.T) map[dice.BoardRoll]uint16 {
	t.Helper()
	return map[dice.BoardRoll]uint16{
		{Board: 511, Roll: mustRoll(t, 12)}: 415,
		{Board: 3, Roll: mustRoll(t, 3)}:    0,
		{Board: 37, Roll: mustRoll(t, 9)}:   4,
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	moves := sampleTable(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, moves))

	parsed, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, moves, parsed)
}

func TestFileRoundTrip(t *testing.T) {
	moves := sampleTable(t)
	path := filepath.Join(t.TempDir(), "best_moves.yml")

	require.NoError(t, WriteFile(path, moves))

	parsed, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, moves, parsed)
}

func TestReadRejectsBadKeys(t *testing.T) {
	for _, doc := range []string{
		"512-5: 3\n",        // board out of range
		"10-1: 3\n",         // roll decodes below 2
		"notanumber-5: 3\n", // non-numeric board
		"37-198: 600\n",     // successor out of range
	} {
		_, err := Read(strings.NewReader(doc))
		assert.Error(t, err, "document %q", doc)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
