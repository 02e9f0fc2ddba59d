package features

// carrierBuckets is the fixed partition of carrier codes into four coarse
// groups, hand-curated from historical delay-rate similarity. The groupings
// are part of the trained model's input contract; do not re-derive them.
var carrierBuckets = map[string]int{
	"PT": 0, "YX": 0, "9E": 0, "QX": 0, "OH": 0, "OO": 0, "C5": 0, "G7": 0, "MQ": 0,
	"HA": 1, "ZW": 1, "YV": 1, "WN": 1,
	"DL": 2, "AA": 2, "G4": 2, "UA": 2, "AS": 2,
}

// defaultCarrierBucket is the catch-all group for carriers outside the three
// named sets.
const defaultCarrierBucket = 3

// CarrierBucket maps a two-letter carrier code to its ordinal bucket (0-3).
// Every code maps to exactly one bucket; unknown codes take the catch-all.
func CarrierBucket(code string) int {
	if bucket, ok := carrierBuckets[code]; ok {
		return bucket
	}
	return defaultCarrierBucket
}
