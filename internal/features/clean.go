package features

// minOriginFlights is the origin-frequency cutoff for training data. Airports
// with 750 or fewer flights in the input set produce delay-rate estimates too
// noisy to train on, so only origins with strictly more are retained.
const minOriginFlights = 750

// Clean filters a batch of raw records down to the ones usable for training
// and labels each survivor with its target outcome.
//
// Exclusions are silent and expected: cancelled flights, records missing
// arrival time or arrival delay, and records from low-traffic origins. The
// origin counts are taken after the record-level drops, matching the order
// the training data was originally prepared in. Clean is idempotent: running
// it on its own output removes nothing further.
func Clean(records []Record) []Record {
	kept := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Cancelled || r.ArrTime == nil || r.ArrDelay == nil {
			continue
		}
		if *r.ArrDelay > 0 {
			r.Target = 1
		} else {
			r.Target = 0
		}
		kept = append(kept, r)
	}

	counts := make(map[string]int, len(kept))
	for _, r := range kept {
		counts[r.Origin]++
	}

	out := make([]Record, 0, len(kept))
	for _, r := range kept {
		if counts[r.Origin] > minOriginFlights {
			out = append(out, r)
		}
	}
	return out
}
