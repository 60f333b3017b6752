package usecase

import (
	"errors"
	"time"

	"officer-mobility/internal/metrics"
	"officer-mobility/internal/mobility"
	"officer-mobility/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FleetFilter narrows a fleet sweep. Grade selects officers by their current
// grade, the year bounds select transfers by destination year.
type FleetFilter struct {
	Grade    string
	FromYear int
	ToYear   int
}

type MobilityUsecase struct {
	officers    repository.OfficerRepository
	assignments repository.AssignmentRepository
	policy      mobility.BucketPolicy
	workers     int
	metrics     *metrics.Metrics
	log         *zap.Logger
}

func NewMobilityUsecase(
	officers repository.OfficerRepository,
	assignments repository.AssignmentRepository,
	workers int,
	m *metrics.Metrics,
	log *zap.Logger,
) *MobilityUsecase {
	if workers < 1 {
		workers = 1
	}
	return &MobilityUsecase{
		officers:    officers,
		assignments: assignments,
		policy:      mobility.DefaultBucketPolicy,
		workers:     workers,
		metrics:     m,
		log:         log,
	}
}

// Snapshots loads the officer's posting history in the engine's input shape.
func (u *MobilityUsecase) Snapshots(fileNo string) ([]mobility.Snapshot, error) {
	officer, err := u.officers.FindByFileNo(fileNo)
	if err != nil {
		return nil, err
	}
	rows, err := u.assignments.GetByOfficer(officer)
	if err != nil {
		return nil, err
	}
	snapshots := make([]mobility.Snapshot, 0, len(rows))
	for _, row := range rows {
		snapshots = append(snapshots, row.Snapshot())
	}
	return snapshots, nil
}

func (u *MobilityUsecase) BuildOfficerProfile(fileNo string) (*mobility.GeoProfile, error) {
	snapshots, err := u.Snapshots(fileNo)
	if err == nil {
		var profile *mobility.GeoProfile
		profile, err = u.policy.BuildProfile(fileNo, snapshots)
		if err == nil {
			u.metrics.IncrementProfile("ok")
			return profile, nil
		}
	}

	if errors.Is(err, mobility.ErrOfficerNotFound) {
		u.metrics.IncrementProfile("not_found")
	} else {
		u.metrics.IncrementProfile("error")
		u.log.Warn("failed to build officer profile", zap.String("file_no", fileNo), zap.Error(err))
	}
	return nil, err
}

func (u *MobilityUsecase) OfficerTransfers(fileNo string) ([]mobility.Transfer, error) {
	snapshots, err := u.Snapshots(fileNo)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, mobility.ErrOfficerNotFound
	}
	return u.policy.ComputeTransfers(snapshots)
}

// FleetSummary loads every matching officer's history with a bounded pool and
// aggregates them in one pass. A failed load marks the officer as skipped.
func (u *MobilityUsecase) FleetSummary(filter FleetFilter) (*mobility.FleetReport, error) {
	start := time.Now()

	fileNos, err := u.officers.ListFileNos(filter.Grade)
	if err != nil {
		return nil, err
	}

	histories := make([]mobility.OfficerHistory, len(fileNos))
	var g errgroup.Group
	g.SetLimit(u.workers)
	for i, fileNo := range fileNos {
		g.Go(func() error {
			snapshots, err := u.Snapshots(fileNo)
			histories[i] = mobility.OfficerHistory{OfficerID: fileNo, Snapshots: snapshots, LoadErr: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := u.policy.SummarizeFleet(histories, mobility.TransferFilter{
		FromYear: filter.FromYear,
		ToYear:   filter.ToYear,
	})

	elapsed := time.Since(start)
	u.metrics.ObserveFleet(&report, elapsed)
	u.log.Info("fleet mobility sweep finished",
		zap.Int("officers", report.Officers),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("transfers", report.Summary.TotalTransfers),
		zap.Duration("elapsed", elapsed),
	)
	for _, s := range report.Skipped {
		u.log.Debug("officer skipped", zap.String("file_no", s.OfficerID), zap.String("reason", s.Reason), zap.String("detail", s.Detail))
	}
	return &report, nil
}
