package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestAttendanceService_ApplyUpdates(t *testing.T) {
	t.Run("статус, заметка и балл перезаписываются", func(t *testing.T) {
		e := newEngine(t)
		session := e.teamSeven(t)
		recordID := session.Attendances[0].ID

		records, err := e.attendance.ApplyUpdates(context.Background(), []domain.AttendanceUpdate{
			{ID: recordID, Status: "present", Note: ptr("ok"), Score: ptr(int64(10))},
		})

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, domain.StatusPresent, records[0].Status)

		stored := e.sessionsOf(t, 7)[0].Attendances[0]
		assert.Equal(t, domain.StatusPresent, stored.Status)
		assert.Equal(t, "ok", *stored.Note)
		assert.Equal(t, int64(10), *stored.Score)
	})

	t.Run("пустые заметка и балл очищают прежние значения", func(t *testing.T) {
		e := newEngine(t)
		session := e.teamSeven(t)
		recordID := session.Attendances[0].ID
		ctx := context.Background()

		_, err := e.attendance.ApplyUpdates(ctx, []domain.AttendanceUpdate{
			{ID: recordID, Status: domain.StatusLate, Note: ptr("traffic"), Score: ptr(int64(5))},
		})
		require.NoError(t, err)
		_, err = e.attendance.ApplyUpdates(ctx, []domain.AttendanceUpdate{
			{ID: recordID, Status: domain.StatusAbsent},
		})
		require.NoError(t, err)

		stored := e.sessionsOf(t, 7)[0].Attendances[0]
		assert.Equal(t, domain.StatusAbsent, stored.Status)
		assert.Nil(t, stored.Note)
		assert.Nil(t, stored.Score)
	})

	t.Run("ошибка: запись 55 не найдена, изменений нет", func(t *testing.T) {
		e := newEngine(t)
		e.teamSeven(t)

		_, err := e.attendance.ApplyUpdates(context.Background(), []domain.AttendanceUpdate{
			{ID: 55, Status: domain.StatusPresent, Note: ptr("ok"), Score: ptr(int64(10))},
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Contains(t, err.Error(), "55")
		for _, record := range e.sessionsOf(t, 7)[0].Attendances {
			assert.Equal(t, domain.StatusNotRecorded, record.Status)
		}
	})

	t.Run("ранее примененные обновления пакета сохраняются", func(t *testing.T) {
		e := newEngine(t)
		session := e.teamSeven(t)

		_, err := e.attendance.ApplyUpdates(context.Background(), []domain.AttendanceUpdate{
			{ID: session.Attendances[0].ID, Status: domain.StatusPresent},
			{ID: 55, Status: domain.StatusPresent},
			{ID: session.Attendances[1].ID, Status: domain.StatusPresent},
		})

		require.Error(t, err)
		stored := e.sessionsOf(t, 7)[0].Attendances
		assert.Equal(t, domain.StatusPresent, stored[0].Status)
		assert.Equal(t, domain.StatusNotRecorded, stored[1].Status)
	})

	t.Run("ошибка: неизвестный статус", func(t *testing.T) {
		e := newEngine(t)
		session := e.teamSeven(t)

		_, err := e.attendance.ApplyUpdates(context.Background(), []domain.AttendanceUpdate{
			{ID: session.Attendances[0].ID, Status: "SICK"},
		})

		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
	})

	t.Run("пустой пакет", func(t *testing.T) {
		e := newEngine(t)

		records, err := e.attendance.ApplyUpdates(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
