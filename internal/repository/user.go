package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/horizonhq/horizon/backend/internal/models"
	"github.com/horizonhq/horizon/backend/pkg/supabase"
)

const usersTable = "users"

type userRepository struct {
	client *supabase.Client
}

// NewUserRepository creates a new user repository backed by the users table.
func NewUserRepository(client *supabase.Client) UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, map[string]string{"id": "eq." + id})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, map[string]string{"email": "eq." + email})
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	body, err := r.client.Insert(ctx, usersTable, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	users, err := unmarshalUsers(body)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("no user returned")
	}
	return &users[0], nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	body, err := r.client.UpdateWhere(ctx, usersTable, map[string]string{"id": "eq." + id}, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}

	users, err := unmarshalUsers(body)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}
	return &users[0], nil
}

func (r *userRepository) getOne(ctx context.Context, query map[string]string) (*models.User, error) {
	query["limit"] = "1"
	body, err := r.client.Select(ctx, usersTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	users, err := unmarshalUsers(body)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}
	return &users[0], nil
}

func unmarshalUsers(body []byte) ([]models.User, error) {
	var users []models.User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal users: %w", err)
	}
	return users, nil
}
