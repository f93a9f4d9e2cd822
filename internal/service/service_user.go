package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
	"github.com/MKhiriev/go-diary-keeper/internal/validators"
	"github.com/MKhiriev/go-diary-keeper/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

// NewUserService returns a UserService that reads and edits the profile of
// the authenticated account.
func NewUserService(repo store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: repo,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

func (u *userService) GetProfile(ctx context.Context, userID int64) (models.UserProfile, error) {
	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.UserProfile{}, u.lookupError(ctx, userID, err)
	}
	return user.Profile(), nil
}

func (u *userService) UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, req); err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := u.userRepository.UpdateUser(ctx, models.User{
		UserID:   userID,
		Nickname: strings.TrimSpace(req.Nickname),
		Avatar:   req.Avatar,
	})
	if err != nil {
		return models.UserProfile{}, u.lookupError(ctx, userID, err)
	}

	log.Info().Int64("user_id", userID).Str("avatar", string(updated.Avatar)).Msg("user profile updated")
	return updated.Profile(), nil
}

func (u *userService) lookupError(ctx context.Context, userID int64, err error) error {
	if errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}
	logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user profile request failed")
	return fmt.Errorf("user profile request failed: %w", err)
}
