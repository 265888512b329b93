package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"rms-backend/internal/domain"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const bcryptCost = 14

type RegisterInput struct {
	Type     string
	Name     string
	Email    string
	Password string
}

type AccountService struct {
	repo AccountRepository
}

func NewAccountService(repo AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// Register creates the user, plus a restaurant owned by them when the
// account type is "restaurant".
func (s *AccountService) Register(ctx context.Context, input RegisterInput) error {
	existing, err := s.repo.GetUserByEmail(input.Email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Type:         input.Type,
	}

	var restaurant *domain.Restaurant
	if input.Type == domain.UserTypeRestaurant {
		restaurant = &domain.Restaurant{Name: input.Name}
	}

	if err := s.repo.CreateUser(user, restaurant); err != nil {
		// Two registrations can race past the lookup above; the unique
		// index settles it.
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Login checks credentials and returns the client-facing account payload.
// Unknown email and wrong password fail with the same error.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	resp := &domain.LoginResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Type:  user.Type,
	}
	if user.Type == domain.UserTypeRestaurant {
		resp.RestaurantID = user.RestaurantID
	}
	return resp, nil
}

var _ AccountServiceInterface = (*AccountService)(nil)
