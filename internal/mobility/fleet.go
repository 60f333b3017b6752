package mobility

import "errors"

// OfficerHistory is the input of a fleet sweep for one officer. LoadErr
// carries a failure from the caller's data layer so the officer is reported
// as skipped instead of aborting the sweep.
type OfficerHistory struct {
	OfficerID string
	Snapshots []Snapshot
	LoadErr   error
}

// Skip reasons.
const (
	SkipNotFound          = "officer_not_found"
	SkipMalformed         = "malformed_snapshots"
	SkipInvalidCoordinate = "invalid_coordinate"
	SkipLoadFailed        = "load_failed"
)

type Skipped struct {
	OfficerID string `json:"officer_id"`
	Reason    string `json:"reason"`
	Detail    string `json:"detail"`
}

// FleetReport is a fleet-wide summary. Partial is set when at least one
// officer was skipped.
type FleetReport struct {
	Summary   Summary   `json:"summary"`
	Officers  int       `json:"officers"`
	Processed int       `json:"processed"`
	Skipped   []Skipped `json:"skipped"`
	Partial   bool      `json:"partial"`
	Policy    string    `json:"policy_version"`
}

// TransferFilter narrows the transfers counted in a fleet sweep.
type TransferFilter struct {
	FromYear int
	ToYear   int
}

// SummarizeFleet runs the batch aggregation over many officers using
// DefaultBucketPolicy.
func SummarizeFleet(histories []OfficerHistory, filter TransferFilter) FleetReport {
	return DefaultBucketPolicy.SummarizeFleet(histories, filter)
}

func (p BucketPolicy) SummarizeFleet(histories []OfficerHistory, filter TransferFilter) FleetReport {
	report := FleetReport{
		Summary:  newSummary(),
		Officers: len(histories),
		Skipped:  make([]Skipped, 0),
		Policy:   p.Version,
	}

	for _, h := range histories {
		if h.LoadErr != nil {
			report.skip(h.OfficerID, h.LoadErr)
			continue
		}
		if len(h.Snapshots) == 0 {
			report.skip(h.OfficerID, ErrOfficerNotFound)
			continue
		}
		transfers, err := p.ComputeTransfers(h.Snapshots)
		if err != nil {
			report.skip(h.OfficerID, err)
			continue
		}
		for _, t := range FilterTransfers(transfers, filter.FromYear, filter.ToYear) {
			report.Summary.add(p, t)
		}
		report.Processed++
	}

	report.Summary.finish()
	report.Partial = len(report.Skipped) > 0
	return report
}

func (r *FleetReport) skip(officerID string, err error) {
	r.Skipped = append(r.Skipped, Skipped{
		OfficerID: officerID,
		Reason:    SkipReason(err),
		Detail:    err.Error(),
	})
}

// SkipReason maps an engine or load error to a stable reason code.
func SkipReason(err error) string {
	switch {
	case errors.Is(err, ErrOfficerNotFound):
		return SkipNotFound
	case errors.Is(err, ErrInvalidCoordinate):
		return SkipInvalidCoordinate
	case errors.Is(err, ErrMalformedSnapshots):
		return SkipMalformed
	default:
		return SkipLoadFailed
	}
}
