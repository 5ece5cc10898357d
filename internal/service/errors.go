package service

import (
	"errors"
	"fmt"

	"github.com/bagdasarian/team-attendance/internal/domain"
	"github.com/bagdasarian/team-attendance/internal/repository"
)

func teamNotFound(teamID int64) error {
	return domain.NewNotFoundError(fmt.Sprintf("team %d", teamID))
}

func memberNotFound(memberID int64) error {
	return domain.NewNotFoundError(fmt.Sprintf("member %d", memberID))
}

// mapNotFound переводит repository.ErrNotFound в доменную ошибку, остальное возвращает как есть
func mapNotFound(err error, notFound func() error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound()
	}
	return err
}
