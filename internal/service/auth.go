package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"myfooddesk/internal/domain"
)

type AuthService struct {
	repo StaffRepository
}

func NewAuthService(repo StaffRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Login verifies staff credentials. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*domain.StaffUser, error) {
	u, err := s.repo.GetStaffUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("look up staff user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *AuthService) ListUsers() ([]domain.StaffUser, error) {
	return s.repo.ListStaffUsers()
}

func (s *AuthService) CreateUser(name, email, role, password string) (*domain.StaffUser, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return nil, invalid("name", "name is required")
	}
	if !emailRe.MatchString(email) {
		return nil, invalid("email", "please enter a valid email address")
	}
	if len(password) < 8 {
		return nil, invalid("password", "password must be at least 8 characters")
	}
	if role == "" {
		role = "staff"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &domain.StaffUser{
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.repo.CreateStaffUser(u); err != nil {
		return nil, fmt.Errorf("create staff user: %w", err)
	}
	return u, nil
}

var _ AuthServiceInterface = (*AuthService)(nil)
