package service

import (
	"context"

	"github.com/bagdasarian/team-attendance/internal/domain"
)

type AttendanceService interface {
	// ApplyUpdates применяет обновления по одному, уже записанные не откатываются
	ApplyUpdates(ctx context.Context, updates []domain.AttendanceUpdate) ([]*domain.AttendanceRecord, error)
}
