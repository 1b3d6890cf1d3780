package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"userorders/internal/apperrors"
	"userorders/internal/repositories"
)

// gate resolves the raw path id and checks the user exists. A non-numeric id is
// reported the same way as an absent user.
func gate(ctx context.Context, users repositories.UserRepository, rawID string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil {
		return 0, apperrors.NotFound()
	}
	ok, err := users.Exists(ctx, id)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.CodeInternal, "Failed to look up user")
	}
	if !ok {
		return 0, apperrors.NotFound()
	}
	return id, nil
}

// fromRepository turns repository sentinels into AppErrors. ErrNotFound after a
// passed gate means the user was deleted in between; the caller sees the same
// message as a failed gate.
func fromRepository(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return apperrors.NotFound()
	case errors.Is(err, repositories.ErrDuplicate):
		return apperrors.Wrap(repositories.ErrDuplicate, apperrors.CodeConflict, "User already exists")
	default:
		return apperrors.Wrap(err, apperrors.CodeInternal, "Storage failure")
	}
}
