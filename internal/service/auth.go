package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/horizonhq/horizon/backend/internal/logger"
	"github.com/horizonhq/horizon/backend/internal/models"
	"github.com/horizonhq/horizon/backend/internal/repository"
	"github.com/horizonhq/horizon/backend/pkg/supabase"
)

type authService struct {
	client   *supabase.Client
	userRepo repository.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(client *supabase.Client, userRepo repository.UserRepository) AuthService {
	return &authService{
		client:   client,
		userRepo: userRepo,
	}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	session, err := s.client.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return sessionToAuthResponse(session), nil
}

func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("account already exists for %s", req.Email)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}

	session, err := s.client.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}

	// Mirror the auth user into the users table so profile fields have a row
	// to live on. A conflict means the row already exists, which is fine.
	user := &models.User{ID: session.User.ID, Email: &session.User.Email}
	if req.Name != "" {
		name := req.Name
		user.Name = &name
	}
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		logger.Ctx(ctx).Debug("user row creation skipped", logger.Err(err))
	}

	resp := sessionToAuthResponse(session)
	if user.Name != nil {
		resp.User.Name = user.Name
	}
	return resp, nil
}

func (s *authService) Logout(ctx context.Context, accessToken string) error {
	if err := s.client.SignOut(ctx, accessToken); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

func (s *authService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// UpdateProfile patches the user's onboarding fields. Only the fields present
// in the request reach the users table.
func (s *authService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.User, error) {
	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.BaselineHappiness != nil {
		fields["baseline_happiness"] = *req.BaselineHappiness
	}
	if req.TypicalSleepHours != nil {
		fields["typical_sleep_hours"] = *req.TypicalSleepHours
	}
	if req.CommonProblems != nil {
		fields["common_problems"] = *req.CommonProblems
	}
	if req.KnownConditions != nil {
		fields["known_conditions"] = *req.KnownConditions
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if len(fields) == 0 {
		return s.GetUserByID(ctx, userID)
	}

	user, err := s.userRepo.UpdateProfile(ctx, userID, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

func sessionToAuthResponse(session *supabase.Session) *models.AuthResponse {
	email := session.User.Email
	return &models.AuthResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		User: models.User{
			ID:    session.User.ID,
			Email: &email,
		},
	}
}
