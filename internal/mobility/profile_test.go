package mobility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProfile_NotFound(t *testing.T) {
	_, err := BuildProfile("F-404", nil)
	assert.ErrorIs(t, err, ErrOfficerNotFound)
}

func TestBuildProfile_SingleSnapshot(t *testing.T) {
	p, err := BuildProfile("F-100", []Snapshot{snap(2022, "A", &colombo)})
	require.NoError(t, err)
	require.Len(t, p.Locations, 1)
	assert.Empty(t, p.Transfers)
	assert.True(t, p.Summary.IsEmpty())
	assert.Equal(t, []int{2022}, p.Locations[0].Years)
}

func TestBuildProfile_LocationsAndLatestGrade(t *testing.T) {
	s := []Snapshot{
		snap(2018, "A", &colombo),
		snap(2019, "A", &colombo),
		snap(2020, "X", nil),
		snap(2021, "A", &colombo),
		snap(2022, "B", &kandy),
	}
	s[0].Grade = GradeIII
	s[1].Grade = GradeII
	s[3].Grade = GradeI
	s[3].Post = "Director"

	p, err := BuildProfile("F-100", s)
	require.NoError(t, err)

	require.Len(t, p.Locations, 3)
	a := p.Locations[0]
	assert.Equal(t, "A", a.InstitutionID)
	assert.Equal(t, []int{2018, 2019, 2021}, a.Years)
	assert.Equal(t, GradeI, a.LatestGrade)
	assert.Equal(t, "Director", a.LatestPost)
	assert.True(t, a.Resolved)

	x := p.Locations[1]
	assert.Equal(t, "X", x.InstitutionID)
	assert.False(t, x.Resolved)
	assert.Nil(t, x.Location)

	assert.Equal(t, "B", p.Locations[2].InstitutionID)

	require.Len(t, p.Timeline, 5)
	assert.Equal(t, GradeIII, p.Timeline[0].Grade)

	// A→X, X→A, A→B
	require.Len(t, p.Transfers, 3)
	assert.Equal(t, BucketUnknown, p.Transfers[0].Bucket)
	assert.Equal(t, BucketUnknown, p.Transfers[1].Bucket)
	assert.Equal(t, BucketRegional, p.Transfers[2].Bucket)

	assert.Equal(t, 3, p.Summary.TotalTransfers)
	assert.Equal(t, 1, p.Summary.ResolvedTransfers)
}

func TestBuildProfile_RejectsForeignSnapshots(t *testing.T) {
	_, err := BuildProfile("F-999", []Snapshot{snap(2022, "A", nil)})
	assert.ErrorIs(t, err, ErrMalformedSnapshots)
}

func TestBuildProfile_HighestGrade(t *testing.T) {
	s := []Snapshot{
		snap(2018, "A", &colombo),
		snap(2019, "B", &kandy),
		snap(2020, "A", &colombo),
		snap(2021, "C", &galle),
	}
	s[0].Grade = GradeIII
	s[1].Grade = GradeI
	s[2].Grade = GradeII
	s[3].Grade = Grade("acting")

	p, err := BuildProfile("F-100", s)
	require.NoError(t, err)
	assert.Equal(t, GradeI, p.HighestGrade)
}

func TestBuildProfile_HighestGradeUnknown(t *testing.T) {
	s := []Snapshot{snap(2020, "A", &colombo)}
	s[0].Grade = GradeNone

	p, err := BuildProfile("F-100", s)
	require.NoError(t, err)
	assert.Equal(t, GradeNone, p.HighestGrade)
}
