package mobility

import "fmt"

// VisitedInstitution is one distinct institution in an officer's history.
type VisitedInstitution struct {
	InstitutionID   string      `json:"institution_id"`
	InstitutionName string      `json:"institution_name"`
	Location        *Coordinate `json:"location,omitempty"`
	Resolved        bool        `json:"resolved"`
	Years           []int       `json:"years"`
	LatestGrade     Grade       `json:"latest_grade"`
	LatestPost      string      `json:"latest_post"`
}

// TimelineEntry is the per-year posting used to render a movement timeline.
type TimelineEntry struct {
	Year            int    `json:"year"`
	InstitutionID   string `json:"institution_id"`
	InstitutionName string `json:"institution_name"`
	Grade           Grade  `json:"grade"`
	Post            string `json:"post"`
}

// HighestGrade is the most senior grade held in any year, GradeNone if no
// snapshot carries a recognised grade.
type GeoProfile struct {
	OfficerID    string               `json:"officer_id"`
	HighestGrade Grade                `json:"highest_grade"`
	Locations    []VisitedInstitution `json:"locations"`
	Timeline     []TimelineEntry      `json:"timeline"`
	Transfers    []Transfer           `json:"transfers"`
	Summary      Summary              `json:"summary"`
}

// BuildProfile assembles the geo-profile of one officer from its full
// snapshot history.
func BuildProfile(officerID string, snapshots []Snapshot) (*GeoProfile, error) {
	return DefaultBucketPolicy.BuildProfile(officerID, snapshots)
}

func (p BucketPolicy) BuildProfile(officerID string, snapshots []Snapshot) (*GeoProfile, error) {
	if len(snapshots) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrOfficerNotFound, officerID)
	}
	ordered, err := sortedSnapshots(snapshots)
	if err != nil {
		return nil, err
	}
	if ordered[0].OfficerID != officerID {
		return nil, fmt.Errorf("%w: requested %q but snapshots belong to %q", ErrMalformedSnapshots, officerID, ordered[0].OfficerID)
	}

	transfers, err := p.ComputeTransfers(ordered)
	if err != nil {
		return nil, err
	}

	profile := &GeoProfile{
		OfficerID: officerID,
		Locations: make([]VisitedInstitution, 0),
		Timeline:  make([]TimelineEntry, 0, len(ordered)),
		Transfers: transfers,
		Summary:   p.ComputeMobilitySummary(transfers),
	}

	index := make(map[string]int)
	for _, s := range ordered {
		profile.Timeline = append(profile.Timeline, TimelineEntry{
			Year:            s.Year,
			InstitutionID:   s.InstitutionID,
			InstitutionName: s.InstitutionName,
			Grade:           s.Grade,
			Post:            s.Post,
		})
		if s.Grade.Outranks(profile.HighestGrade) {
			profile.HighestGrade = s.Grade
		}

		i, seen := index[s.InstitutionID]
		if !seen {
			e := endpointOf(s)
			profile.Locations = append(profile.Locations, VisitedInstitution{
				InstitutionID:   s.InstitutionID,
				InstitutionName: s.InstitutionName,
				Location:        e.Location,
				Resolved:        e.Location != nil,
			})
			i = len(profile.Locations) - 1
			index[s.InstitutionID] = i
		}

		// ordered is ascending, so the last write wins as the most recent year.
		loc := &profile.Locations[i]
		loc.Years = append(loc.Years, s.Year)
		loc.LatestGrade = s.Grade
		loc.LatestPost = s.Post
	}

	return profile, nil
}
