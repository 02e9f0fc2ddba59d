package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// usableRecord returns a record that survives the record-level drops.
func usableRecord(origin string, arrDelay float64) Record {
	return Record{
		Year: 2023, Month: 6, DayOfMonth: 15, DayOfWeek: 4,
		DepTime: 900, ArrTime: intPtr(1130), ArrDelay: floatPtr(arrDelay),
		Origin: origin, Dest: "LAX", Carrier: "DL", Distance: 1946,
	}
}

// bulkRecords produces n usable records from the same origin.
func bulkRecords(origin string, n int) []Record {
	out := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, usableRecord(origin, float64(i%2)))
	}
	return out
}

func TestCleanDropsCancelledFlights(t *testing.T) {
	records := bulkRecords("ATL", 800)
	cancelled := usableRecord("ATL", 30)
	cancelled.Cancelled = true
	records = append(records, cancelled)

	out := Clean(records)
	assert.Len(t, out, 800)
	for _, r := range out {
		assert.False(t, r.Cancelled)
	}
}

func TestCleanDropsMissingArrivalData(t *testing.T) {
	records := bulkRecords("ATL", 800)

	noArrTime := usableRecord("ATL", 30)
	noArrTime.ArrTime = nil
	noDelay := usableRecord("ATL", 30)
	noDelay.ArrDelay = nil
	records = append(records, noArrTime, noDelay)

	out := Clean(records)
	assert.Len(t, out, 800)
}

func TestCleanAssignsTarget(t *testing.T) {
	records := bulkRecords("ATL", 751)
	records[0].ArrDelay = floatPtr(12)
	records[1].ArrDelay = floatPtr(0)
	records[2].ArrDelay = floatPtr(-8)

	out := Clean(records)
	require.Len(t, out, 751)
	assert.Equal(t, 1, out[0].Target)
	assert.Equal(t, 0, out[1].Target)
	assert.Equal(t, 0, out[2].Target)
}

func TestCleanOriginFrequencyBoundary(t *testing.T) {
	// Exactly 750 occurrences is excluded; 751 is retained.
	records := append(bulkRecords("SLN", 750), bulkRecords("ATL", 751)...)

	out := Clean(records)
	require.Len(t, out, 751)
	for _, r := range out {
		assert.Equal(t, "ATL", r.Origin)
	}
}

func TestCleanCountsOriginsAfterRecordDrops(t *testing.T) {
	// 751 records from one origin, but one of them cancelled: the origin only
	// has 750 usable flights and is excluded entirely.
	records := bulkRecords("BOI", 751)
	records[0].Cancelled = true

	out := Clean(records)
	assert.Empty(t, out)
}

func TestCleanIsIdempotent(t *testing.T) {
	records := append(bulkRecords("ATL", 900), bulkRecords("SLN", 20)...)
	cancelled := usableRecord("ATL", 5)
	cancelled.Cancelled = true
	records = append(records, cancelled)

	once := Clean(records)
	twice := Clean(once)
	assert.Equal(t, once, twice)
}
