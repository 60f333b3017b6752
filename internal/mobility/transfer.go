package mobility

import (
	"fmt"
	"sort"
)

// Snapshot is one officer's posting record for one year.
type Snapshot struct {
	OfficerID       string      `json:"officer_id"`
	Year            int         `json:"year"`
	InstitutionID   string      `json:"institution_id"`
	InstitutionName string      `json:"institution_name"`
	Location        *Coordinate `json:"location,omitempty"`
	Grade           Grade       `json:"grade"`
	Post            string      `json:"post"`
}

// Endpoint is one side of a transfer.
type Endpoint struct {
	InstitutionID   string      `json:"institution_id"`
	InstitutionName string      `json:"institution_name"`
	Year            int         `json:"year"`
	Location        *Coordinate `json:"location,omitempty"`
}

// Transfer is a relocation between two temporally adjacent snapshots.
// DistanceKm is nil when either institution has no resolved coordinates.
type Transfer struct {
	OfficerID  string     `json:"officer_id"`
	From       Endpoint   `json:"from"`
	To         Endpoint   `json:"to"`
	DistanceKm *float64   `json:"distance_km"`
	Bucket     Bucket     `json:"bucket"`
	Status     DataStatus `json:"status"`
}

func (t Transfer) Description() string {
	return t.From.InstitutionName + " → " + t.To.InstitutionName
}

func (t Transfer) HasDistance() bool {
	return t.DistanceKm != nil
}

// clone returns a deep copy sharing no pointers with t.
func (t Transfer) clone() *Transfer {
	out := t
	out.From = t.From.clone()
	out.To = t.To.clone()
	if t.DistanceKm != nil {
		d := *t.DistanceKm
		out.DistanceKm = &d
	}
	return &out
}

func (e Endpoint) clone() Endpoint {
	if e.Location != nil {
		loc := *e.Location
		e.Location = &loc
	}
	return e
}

func endpointOf(s Snapshot) Endpoint {
	e := Endpoint{
		InstitutionID:   s.InstitutionID,
		InstitutionName: s.InstitutionName,
		Year:            s.Year,
	}
	if s.Location != nil {
		loc := *s.Location
		e.Location = &loc
	}
	return e
}

// sortedSnapshots returns a year-ascending copy, rejecting lists that mix
// officers or repeat a year.
func sortedSnapshots(snapshots []Snapshot) ([]Snapshot, error) {
	out := make([]Snapshot, len(snapshots))
	copy(out, snapshots)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })

	for i := 1; i < len(out); i++ {
		if out[i].OfficerID != out[0].OfficerID {
			return nil, fmt.Errorf("%w: snapshots for officers %q and %q mixed", ErrMalformedSnapshots, out[0].OfficerID, out[i].OfficerID)
		}
		if out[i].Year == out[i-1].Year {
			return nil, fmt.Errorf("%w: officer %q has two snapshots for %d", ErrMalformedSnapshots, out[i].OfficerID, out[i].Year)
		}
	}
	return out, nil
}

// ComputeTransfers derives the ordered transfers of one officer using
// DefaultBucketPolicy.
func ComputeTransfers(snapshots []Snapshot) ([]Transfer, error) {
	return DefaultBucketPolicy.ComputeTransfers(snapshots)
}

// ComputeTransfers emits a transfer for every adjacent pair of snapshots whose
// institutions differ. Staying at the same institution, even across a grade
// change, is not a transfer.
func (p BucketPolicy) ComputeTransfers(snapshots []Snapshot) ([]Transfer, error) {
	ordered, err := sortedSnapshots(snapshots)
	if err != nil {
		return nil, err
	}

	transfers := make([]Transfer, 0)
	for i := 0; i+1 < len(ordered); i++ {
		prev, next := ordered[i], ordered[i+1]
		if prev.InstitutionID == next.InstitutionID {
			continue
		}

		t := Transfer{
			OfficerID: prev.OfficerID,
			From:      endpointOf(prev),
			To:        endpointOf(next),
			Status:    dataStatus(prev.Location, next.Location),
		}
		if t.Status == StatusResolved {
			d, err := DistanceBetween(*prev.Location, *next.Location)
			if err != nil {
				return nil, fmt.Errorf("transfer %s (%d) → %s (%d): %w",
					prev.InstitutionID, prev.Year, next.InstitutionID, next.Year, err)
			}
			t.DistanceKm = &d
		}
		t.Bucket = p.Classify(t.DistanceKm)
		transfers = append(transfers, t)
	}
	return transfers, nil
}
