package service

import (
	"context"
	"fmt"

	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/logging"
	"github.com/bagdasarian/team-attendance/internal/repository"
)

type attendanceService struct {
	store repository.Store
	log   logging.Logger
}

func NewAttendanceService(store repository.Store, log logging.Logger) AttendanceService {
	return &attendanceService{
		store: store,
		log:   log.With("service", "attendance"),
	}
}

func (s *attendanceService) ApplyUpdates(ctx context.Context, updates []domain.AttendanceUpdate) ([]*domain.AttendanceRecord, error) {
	records := make([]*domain.AttendanceRecord, 0, len(updates))
	for _, update := range updates {
		record, err := s.apply(ctx, update)
		if err != nil {
			s.log.Warn(ctx, "attendance update aborted", "record_id", update.ID, "applied", len(records), "error", err)
			return nil, err
		}
		records = append(records, record)
	}

	s.log.Debug(ctx, "attendance updated", "count", len(records))
	return records, nil
}

func (s *attendanceService) apply(ctx context.Context, update domain.AttendanceUpdate) (*domain.AttendanceRecord, error) {
	status, err := domain.ParseAttendanceStatus(string(update.Status))
	if err != nil {
		return nil, err
	}

	var record *domain.AttendanceRecord
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		record, err = repos.Attendances().GetByID(ctx, update.ID)
		if err != nil {
			return mapNotFound(err, func() error {
				return domain.NewNotFoundError(fmt.Sprintf("attendance record %d", update.ID))
			})
		}

		record.Status = status
		record.Note = update.Note
		record.Score = update.Score
		return repos.Attendances().Update(ctx, record)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
