package mobility

// Bucket is the distance class of a transfer.
type Bucket string

const (
	BucketUnknown   Bucket = "unknown"
	BucketLocal     Bucket = "local"
	BucketRegional  Bucket = "regional"
	BucketLongRange Bucket = "long-range"
)

// Buckets lists every bucket in display order.
var Buckets = []Bucket{BucketLocal, BucketRegional, BucketLongRange, BucketUnknown}

// BucketPolicy holds the distance thresholds used for classification.
// A distance below LocalBelowKm is local, one up to and including
// RegionalUpToKm is regional, anything above is long-range.
type BucketPolicy struct {
	Version        string  `json:"version"`
	LocalBelowKm   float64 `json:"local_below_km"`
	RegionalUpToKm float64 `json:"regional_up_to_km"`
}

var DefaultBucketPolicy = BucketPolicy{
	Version:        "v1",
	LocalBelowKm:   50,
	RegionalUpToKm: 100,
}

func (p BucketPolicy) Classify(distanceKm *float64) Bucket {
	if distanceKm == nil {
		return BucketUnknown
	}
	d := *distanceKm
	switch {
	case d < p.LocalBelowKm:
		return BucketLocal
	case d <= p.RegionalUpToKm:
		return BucketRegional
	default:
		return BucketLongRange
	}
}

// Classify uses DefaultBucketPolicy.
func Classify(distanceKm *float64) Bucket {
	return DefaultBucketPolicy.Classify(distanceKm)
}

// DataStatus says which end of a transfer, if any, lacks coordinates.
type DataStatus string

const (
	StatusResolved              DataStatus = "resolved"
	StatusOriginUnresolved      DataStatus = "origin-unresolved"
	StatusDestinationUnresolved DataStatus = "destination-unresolved"
	StatusBothUnresolved        DataStatus = "both-unresolved"
)

func dataStatus(from, to *Coordinate) DataStatus {
	switch {
	case from == nil && to == nil:
		return StatusBothUnresolved
	case from == nil:
		return StatusOriginUnresolved
	case to == nil:
		return StatusDestinationUnresolved
	default:
		return StatusResolved
	}
}
