package flightdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportFromCSV(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()

	count, err := client.ImportFromCSV(ctx, filepath.Join("..", "testdata", "flights.csv"))
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	records, err := client.Queries.ListFlights(ctx)
	require.NoError(t, err)
	require.Len(t, records, 5)

	// Float-formatted times lose their fractional part.
	assert.Equal(t, 830, records[0].DepTime)
	require.NotNil(t, records[0].ArrDelay)
	assert.Equal(t, 12.0, *records[0].ArrDelay)

	// Empty arrival fields import as missing, not zero.
	assert.Nil(t, records[3].ArrTime)
	assert.Nil(t, records[3].ArrDelay)

	// Cancelled flag parses from float form.
	assert.True(t, records[4].Cancelled)
	assert.False(t, records[0].Cancelled)
}

func TestImportFromCSVMissingColumn(t *testing.T) {
	client := testClient(t)

	path := filepath.Join(t.TempDir(), "flights.csv")
	require.NoError(t, os.WriteFile(path, []byte("YEAR,MONTH\n2023,6\n"), 0o644))

	_, err := client.ImportFromCSV(context.Background(), path)
	assert.ErrorContains(t, err, "missing column")
}

func TestImportFromCSVMissingFile(t *testing.T) {
	client := testClient(t)
	_, err := client.ImportFromCSV(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
