package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nutritrack/backend/internal/models"
)

var (
	ErrEmptyName  = errors.New("name must not be empty")
	ErrEmptyEmail = errors.New("email must not be empty")
)

// fallbackProfileName is used when a goal is set before onboarding completed.
// Mirrors the original client behavior of synthesizing a placeholder profile
// instead of rejecting the goal.
const fallbackProfileName = "User"

// ProfileService handles onboarding and the goal lifecycle.
type ProfileService struct {
	store IUserDataStore
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(store IUserDataStore) *ProfileService {
	return &ProfileService{store: store}
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

// Onboard creates the initial document: profile set, no goal, empty log.
// Whitespace-only names or emails are rejected.
func (s *ProfileService) Onboard(ctx context.Context, name, email string) (*models.UserData, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}

	data := &models.UserData{
		User: models.UserProfile{Name: name, Email: email},
		Goal: nil,
		Log:  models.DailyLog{},
	}
	if err := s.store.Save(ctx, data); err != nil {
		return nil, fmt.Errorf("failed to save user data: %w", err)
	}
	return data, nil
}

// SetGoal replaces the active goal, preserving the existing profile identity
// and log. If no document exists yet a placeholder profile is synthesized.
func (s *ProfileService) SetGoal(ctx context.Context, goal models.Goal) (*models.UserData, error) {
	data, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user data: %w", err)
	}
	if data == nil {
		data = &models.UserData{
			User: models.UserProfile{Name: fallbackProfileName, Email: ""},
			Log:  models.DailyLog{},
		}
	}
	if data.Log == nil {
		data.Log = models.DailyLog{}
	}

	data.Goal = &goal
	if err := s.store.Save(ctx, data); err != nil {
		return nil, fmt.Errorf("failed to save user data: %w", err)
	}
	return data, nil
}

// UserData returns the persisted document, or ErrNotOnboarded before
// onboarding.
func (s *ProfileService) UserData(ctx context.Context) (*models.UserData, error) {
	data, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user data: %w", err)
	}
	if data == nil {
		return nil, ErrNotOnboarded
	}
	return data, nil
}
