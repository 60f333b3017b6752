package database

import (
	"errors"
	"fmt"

	"officer-mobility/internal/mobility"
	"officer-mobility/internal/model"
	"officer-mobility/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func coord(v float64) *float64 { return &v }

// sampleInstitutions includes one ungeocoded institution on purpose.
var sampleInstitutions = []model.Institution{
	{Code: "CMB-NH", Name: "National Hospital Colombo", Category: "major", Latitude: coord(6.9271), Longitude: coord(79.8612), LocationName: "Colombo 10", District: "Colombo"},
	{Code: "KDY-TH", Name: "Teaching Hospital Kandy", Category: "major", Latitude: coord(7.2906), Longitude: coord(80.6337), LocationName: "Kandy", District: "Kandy"},
	{Code: "GLE-TH", Name: "Teaching Hospital Karapitiya", Category: "major", Latitude: coord(6.0535), Longitude: coord(80.2210), LocationName: "Galle", District: "Galle"},
	{Code: "JFN-TH", Name: "Teaching Hospital Jaffna", Category: "major", Latitude: coord(9.6615), Longitude: coord(80.0255), LocationName: "Jaffna", District: "Jaffna"},
	{Code: "NGB-DGH", Name: "District General Hospital Negombo", Category: "minor", Latitude: coord(7.2083), Longitude: coord(79.8358), LocationName: "Negombo", District: "Gampaha"},
	{Code: "MDW-DH", Name: "Divisional Hospital Madawachchiya", Category: "minor", District: "Anuradhapura"},
}

type samplePosting struct {
	year  int
	code  string
	grade string
	post  string
}

var sampleOfficers = []struct {
	officer  model.Officer
	postings []samplePosting
}{
	{
		officer: model.Officer{FileNo: "F-0001", Name: "A. Perera", Grade: "GI", Post: "Consultant Physician"},
		postings: []samplePosting{
			{2019, "CMB-NH", "GII", "Senior Registrar"},
			{2020, "CMB-NH", "GII", "Senior Registrar"},
			{2021, "KDY-TH", "GI", "Consultant Physician"},
			{2022, "KDY-TH", "GI", "Consultant Physician"},
		},
	},
	{
		officer: model.Officer{FileNo: "F-0002", Name: "S. Fernando", Grade: "GII", Post: "Medical Officer"},
		postings: []samplePosting{
			{2019, "NGB-DGH", "GIII", "Medical Officer"},
			{2020, "CMB-NH", "GIII", "Medical Officer"},
			{2021, "MDW-DH", "GII", "Medical Officer In Charge"},
			{2022, "NGB-DGH", "GII", "Medical Officer"},
		},
	},
	{
		officer: model.Officer{FileNo: "F-0003", Name: "K. Sivakumar", Grade: "SP", Post: "Director"},
		postings: []samplePosting{
			{2018, "JFN-TH", "GI", "Deputy Director"},
			{2020, "GLE-TH", "SP", "Director"},
			{2022, "CMB-NH", "SP", "Director"},
		},
	},
	{
		officer:  model.Officer{FileNo: "F-0004", Name: "N. Jayasuriya", Grade: "GIII", Post: "Intern Medical Officer"},
		postings: []samplePosting{{2023, "GLE-TH", "GIII", "Intern Medical Officer"}},
	},
}

// Seeder writes the sample fleet through the repositories. Rows are matched
// on their natural keys, so running it twice changes nothing.
type Seeder struct {
	institutions repository.InstitutionRepository
	officers     repository.OfficerRepository
	assignments  repository.AssignmentRepository
	log          *zap.Logger
}

func NewSeeder(
	institutions repository.InstitutionRepository,
	officers repository.OfficerRepository,
	assignments repository.AssignmentRepository,
	log *zap.Logger,
) *Seeder {
	return &Seeder{institutions: institutions, officers: officers, assignments: assignments, log: log}
}

func SeedAll(db *gorm.DB, log *zap.Logger) error {
	return NewSeeder(
		repository.NewInstitutionRepository(db),
		repository.NewOfficerRepository(db),
		repository.NewAssignmentRepository(db),
		log,
	).Seed()
}

func (s *Seeder) Seed() error {
	institutions := make(map[string]uint, len(sampleInstitutions))
	for _, inst := range sampleInstitutions {
		id, err := s.institution(inst)
		if err != nil {
			return fmt.Errorf("seed institution %s: %w", inst.Code, err)
		}
		institutions[inst.Code] = id
	}
	s.log.Info("institutions seeded", zap.Int("count", len(institutions)))

	for _, sample := range sampleOfficers {
		officer, err := s.officer(sample.officer)
		if err != nil {
			return fmt.Errorf("seed officer %s: %w", sample.officer.FileNo, err)
		}

		existing, err := s.assignments.GetByOfficer(officer)
		if err != nil {
			return fmt.Errorf("seed officer %s: %w", officer.FileNo, err)
		}
		have := make(map[int]bool, len(existing))
		for _, a := range existing {
			have[a.Year] = true
		}

		created := 0
		for _, p := range sample.postings {
			if have[p.year] {
				continue
			}
			row := model.Assignment{
				OfficerID:     officer.ID,
				InstitutionID: institutions[p.code],
				Year:          p.year,
				Grade:         p.grade,
				Post:          p.post,
			}
			if err := s.assignments.Create(&row); err != nil {
				return fmt.Errorf("seed assignment %s/%d: %w", officer.FileNo, p.year, err)
			}
			created++
		}
		s.log.Info("officer seeded",
			zap.String("file_no", officer.FileNo),
			zap.Int("postings", len(sample.postings)),
			zap.Int("created", created),
		)
	}
	return nil
}

func (s *Seeder) institution(inst model.Institution) (uint, error) {
	found, err := s.institutions.FindByCode(inst.Code)
	if err == nil {
		return found.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	if err := s.institutions.Create(&inst); err != nil {
		return 0, err
	}
	return inst.ID, nil
}

func (s *Seeder) officer(officer model.Officer) (*model.Officer, error) {
	found, err := s.officers.FindByFileNo(officer.FileNo)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, mobility.ErrOfficerNotFound) {
		return nil, err
	}
	if err := s.officers.Create(&officer); err != nil {
		return nil, err
	}
	return &officer, nil
}
