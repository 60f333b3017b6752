package mobility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snap(year int, inst string, loc *Coordinate) Snapshot {
	return Snapshot{
		OfficerID:       "F-100",
		Year:            year,
		InstitutionID:   inst,
		InstitutionName: "Inst " + inst,
		Location:        loc,
		Grade:           GradeII,
		Post:            "Assistant Director",
	}
}

func TestComputeTransfers_SkipsSameInstitution(t *testing.T) {
	transfers, err := ComputeTransfers([]Snapshot{
		snap(2021, "A", &colombo),
		snap(2022, "A", &colombo),
		snap(2023, "B", &kandy),
	})
	require.NoError(t, err)
	require.Len(t, transfers, 1)

	tr := transfers[0]
	assert.Equal(t, "A", tr.From.InstitutionID)
	assert.Equal(t, 2022, tr.From.Year)
	assert.Equal(t, "B", tr.To.InstitutionID)
	assert.Equal(t, 2023, tr.To.Year)
	require.NotNil(t, tr.DistanceKm)
	assert.Equal(t, BucketRegional, tr.Bucket)
	assert.Equal(t, StatusResolved, tr.Status)
	assert.Equal(t, "Inst A → Inst B", tr.Description())
}

func TestComputeTransfers_GradeChangeIsNotATransfer(t *testing.T) {
	s1 := snap(2020, "A", &colombo)
	s2 := snap(2021, "A", &colombo)
	s2.Grade = GradeI
	transfers, err := ComputeTransfers([]Snapshot{s1, s2})
	require.NoError(t, err)
	assert.Empty(t, transfers)
}

func TestComputeTransfers_FewerThanTwo(t *testing.T) {
	transfers, err := ComputeTransfers(nil)
	require.NoError(t, err)
	assert.NotNil(t, transfers)
	assert.Empty(t, transfers)

	transfers, err = ComputeTransfers([]Snapshot{snap(2020, "A", nil)})
	require.NoError(t, err)
	assert.Empty(t, transfers)
}

func TestComputeTransfers_SortsDefensively(t *testing.T) {
	input := []Snapshot{
		snap(2023, "C", &galle),
		snap(2021, "A", &colombo),
		snap(2022, "B", &kandy),
	}
	transfers, err := ComputeTransfers(input)
	require.NoError(t, err)
	require.Len(t, transfers, 2)
	assert.Equal(t, "A", transfers[0].From.InstitutionID)
	assert.Equal(t, "B", transfers[0].To.InstitutionID)
	assert.Equal(t, "B", transfers[1].From.InstitutionID)
	assert.Equal(t, "C", transfers[1].To.InstitutionID)

	// input order untouched
	assert.Equal(t, 2023, input[0].Year)
}

func TestComputeTransfers_RevisitCounts(t *testing.T) {
	transfers, err := ComputeTransfers([]Snapshot{
		snap(2019, "A", &colombo),
		snap(2020, "B", &negombo),
		snap(2021, "A", &colombo),
	})
	require.NoError(t, err)
	require.Len(t, transfers, 2)
	assert.Equal(t, "B", transfers[1].From.InstitutionID)
	assert.Equal(t, "A", transfers[1].To.InstitutionID)
	assert.Equal(t, *transfers[0].DistanceKm, *transfers[1].DistanceKm)
	assert.Equal(t, BucketLocal, transfers[0].Bucket)
}

func TestComputeTransfers_UnresolvedIsAbsentNotZero(t *testing.T) {
	transfers, err := ComputeTransfers([]Snapshot{
		snap(2019, "A", &colombo),
		snap(2020, "X", nil),
		snap(2021, "Y", nil),
		snap(2022, "B", &kandy),
	})
	require.NoError(t, err)
	require.Len(t, transfers, 3)
	for _, tr := range transfers {
		assert.Nil(t, tr.DistanceKm)
		assert.Equal(t, BucketUnknown, tr.Bucket)
	}
	assert.Equal(t, StatusDestinationUnresolved, transfers[0].Status)
	assert.Equal(t, StatusBothUnresolved, transfers[1].Status)
	assert.Equal(t, StatusOriginUnresolved, transfers[2].Status)
}

func TestComputeTransfers_Malformed(t *testing.T) {
	_, err := ComputeTransfers([]Snapshot{snap(2020, "A", nil), snap(2020, "B", nil)})
	assert.ErrorIs(t, err, ErrMalformedSnapshots)

	other := snap(2021, "B", nil)
	other.OfficerID = "F-200"
	_, err = ComputeTransfers([]Snapshot{snap(2020, "A", nil), other})
	assert.ErrorIs(t, err, ErrMalformedSnapshots)
}

func TestComputeTransfers_InvalidCoordinate(t *testing.T) {
	bad := Coordinate{Lat: 123, Lon: 80}
	_, err := ComputeTransfers([]Snapshot{snap(2020, "A", &colombo), snap(2021, "B", &bad)})
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}
