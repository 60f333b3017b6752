package mobility

// Summary is the aggregate over a set of transfers. TotalTransfers counts
// every transfer; distance figures only cover ResolvedTransfers.
type Summary struct {
	TotalTransfers     int            `json:"total_transfers"`
	ResolvedTransfers  int            `json:"resolved_transfers"`
	TotalDistanceKm    float64        `json:"total_distance_km"`
	AverageDistanceKm  float64        `json:"average_distance_km"`
	Longest            *Transfer      `json:"longest,omitempty"`
	LongestDescription string         `json:"longest_description,omitempty"`
	Buckets            map[Bucket]int `json:"buckets"`

	// rawTotal keeps the unrounded sum so merged summaries don't accumulate
	// rounding error.
	rawTotal float64
}

// IsEmpty reports a summary over no transfers at all.
func (s Summary) IsEmpty() bool {
	return s.TotalTransfers == 0
}

// HasDistance is false both for an empty set and for a set whose transfers
// all lack a distance; IsEmpty tells the two apart.
func (s Summary) HasDistance() bool {
	return s.ResolvedTransfers > 0
}

func newSummary() Summary {
	buckets := make(map[Bucket]int, len(Buckets))
	for _, b := range Buckets {
		buckets[b] = 0
	}
	return Summary{Buckets: buckets}
}

// ComputeMobilitySummary aggregates transfers in a single pass using
// DefaultBucketPolicy.
func ComputeMobilitySummary(transfers []Transfer) Summary {
	return DefaultBucketPolicy.ComputeMobilitySummary(transfers)
}

func (p BucketPolicy) ComputeMobilitySummary(transfers []Transfer) Summary {
	s := newSummary()
	for i := range transfers {
		s.add(p, transfers[i])
	}
	s.finish()
	return s
}

// add counts t under the bucket its distance falls in; the Bucket already
// stored on t is ignored.
func (s *Summary) add(p BucketPolicy, t Transfer) {
	bucket := p.Classify(t.DistanceKm)
	s.TotalTransfers++
	s.Buckets[bucket]++
	if t.DistanceKm == nil {
		return
	}
	s.ResolvedTransfers++
	s.rawTotal += *t.DistanceKm
	if s.Longest == nil || longerThan(t, *s.Longest) {
		s.Longest = t.clone()
		s.Longest.Bucket = bucket
	}
}

func (s *Summary) finish() {
	s.TotalDistanceKm = roundKm(s.rawTotal)
	s.AverageDistanceKm = 0
	if s.ResolvedTransfers > 0 {
		s.AverageDistanceKm = roundKm(s.rawTotal / float64(s.ResolvedTransfers))
	}
	s.LongestDescription = ""
	if s.Longest != nil {
		s.LongestDescription = s.Longest.Description()
	}
}

// longerThan orders transfers by distance desc, then origin name asc, then
// destination name asc. Both transfers must have a distance.
func longerThan(a, b Transfer) bool {
	if *a.DistanceKm != *b.DistanceKm {
		return *a.DistanceKm > *b.DistanceKm
	}
	if a.From.InstitutionName != b.From.InstitutionName {
		return a.From.InstitutionName < b.From.InstitutionName
	}
	return a.To.InstitutionName < b.To.InstitutionName
}

// Merge combines two partial summaries. The average is re-derived from the
// combined count and sum.
func (s Summary) Merge(other Summary) Summary {
	out := newSummary()
	out.TotalTransfers = s.TotalTransfers + other.TotalTransfers
	out.ResolvedTransfers = s.ResolvedTransfers + other.ResolvedTransfers
	out.rawTotal = s.sum() + other.sum()
	for b, n := range s.Buckets {
		out.Buckets[b] += n
	}
	for b, n := range other.Buckets {
		out.Buckets[b] += n
	}

	var longest *Transfer
	switch {
	case s.Longest == nil:
		longest = other.Longest
	case other.Longest == nil:
		longest = s.Longest
	case longerThan(*other.Longest, *s.Longest):
		longest = other.Longest
	default:
		longest = s.Longest
	}
	if longest != nil {
		out.Longest = longest.clone()
	}
	out.finish()
	return out
}

// sum falls back to the rounded total for summaries built outside this
// package, e.g. decoded from JSON.
func (s Summary) sum() float64 {
	if s.rawTotal == 0 && s.TotalDistanceKm != 0 {
		return s.TotalDistanceKm
	}
	return s.rawTotal
}

// FilterTransfers keeps transfers whose destination year lies within
// [fromYear, toYear]. A zero bound is open.
func FilterTransfers(transfers []Transfer, fromYear, toYear int) []Transfer {
	out := make([]Transfer, 0, len(transfers))
	for _, t := range transfers {
		if fromYear != 0 && t.To.Year < fromYear {
			continue
		}
		if toYear != 0 && t.To.Year > toYear {
			continue
		}
		out = append(out, t)
	}
	return out
}
