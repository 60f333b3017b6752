package repository

import (
	"testing"
	"time"

	"officer-mobility/internal/mobility"
	"officer-mobility/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestOfficerRepository_FindByFileNo(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOfficerRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `officers` WHERE file_no = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "file_no", "name", "grade", "post"}).
			AddRow(7, "F-0001", "A. Perera", "GI", "Consultant Physician"))

	officer, err := repo.FindByFileNo("F-0001")
	require.NoError(t, err)
	assert.Equal(t, uint(7), officer.ID)
	assert.Equal(t, "GI", officer.Grade)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOfficerRepository_FindByFileNo_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOfficerRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `officers` WHERE file_no = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "file_no"}))

	_, err := repo.FindByFileNo("F-404")
	assert.ErrorIs(t, err, mobility.ErrOfficerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_GetByOfficer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssignmentRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `assignments` WHERE officer_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "officer_id", "institution_id", "year", "grade", "post"}).
			AddRow(1, 7, 10, 2021, "GII", "Senior Registrar").
			AddRow(2, 7, 11, 2022, "GI", "Consultant"))
	// no deleted_at clause: a retired institution still resolves for old postings
	mock.ExpectQuery("SELECT \\* FROM `institutions` WHERE `institutions`.`id` IN \\(\\?,\\?\\)$").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name", "latitude", "longitude", "deleted_at"}).
			AddRow(10, "CMB-NH", "National Hospital Colombo", 6.9271, 79.8612, nil).
			AddRow(11, "MDW-DH", "Divisional Hospital Madawachchiya", nil, nil, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))

	officer := &model.Officer{FileNo: "F-0001"}
	officer.ID = 7

	rows, err := repo.GetByOfficer(officer)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.NoError(t, mock.ExpectationsWereMet())

	first := rows[0].Snapshot()
	assert.Equal(t, "F-0001", first.OfficerID)
	assert.Equal(t, "CMB-NH", first.InstitutionID)
	require.NotNil(t, first.Location)
	assert.Equal(t, 6.9271, first.Location.Lat)

	second := rows[1].Snapshot()
	assert.Equal(t, mobility.GradeI, second.Grade)
	assert.Equal(t, "MDW-DH", second.InstitutionID)
	assert.Nil(t, second.Location)
}

func TestAssignmentRepository_GetByYear_IncludesRetiredRows(t *testing.T) {
	db, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	repo := NewAssignmentRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `assignments` WHERE year = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "officer_id", "institution_id", "year", "grade", "post"}).
			AddRow(1, 7, 11, 2021, "GII", "Medical Officer"))
	mock.ExpectQuery("SELECT \\* FROM `officers` WHERE `officers`.`id` = \\?$").
		WillReturnRows(sqlmock.NewRows([]string{"id", "file_no", "name", "deleted_at"}).
			AddRow(7, "F-0002", "S. Fernando", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	mock.ExpectQuery("SELECT \\* FROM `institutions` WHERE `institutions`.`id` = \\?$").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name", "deleted_at"}).
			AddRow(11, "MDW-DH", "Divisional Hospital Madawachchiya", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))

	rows, err := repo.GetByYear(2021)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.NoError(t, mock.ExpectationsWereMet())

	snap := rows[0].Snapshot()
	assert.Equal(t, "F-0002", snap.OfficerID)
	assert.Equal(t, "MDW-DH", snap.InstitutionID)
}

func TestOfficerRepository_Count(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOfficerRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `officers`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
