package services

import (
	"github.com/hearthware/store-api/auth"
	"github.com/hearthware/store-api/models"
)

type UserService struct {
	repo Repository
}

func NewUserService(repo Repository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new user with role "user" and returns it with a fresh
// bearer token.
func (s *UserService) Register(name, email, password string) (*models.User, string, error) {
	if _, err := s.repo.UserByEmail(email); err == nil {
		return nil, "", ErrEmailTaken
	} else if err != ErrNotFound {
		return nil, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := s.repo.CreateUser(user); err != nil {
		return nil, "", err
	}

	token, err := auth.IssueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks the credentials and issues a token. A missing email and a wrong
// password are reported separately, matching the existing contract.
func (s *UserService) Login(email, password string) (*models.User, string, error) {
	user, err := s.repo.UserByEmail(email)
	if err == ErrNotFound {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, "", ErrBadCredential
	}

	token, err := auth.IssueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout revokes every token the user holds by bumping the token version.
func (s *UserService) Logout(userID uint) error {
	user, err := s.repo.UserByID(userID)
	if err != nil {
		return err
	}
	return s.repo.UpdateUser(user.ID, map[string]interface{}{
		"token_version": user.TokenVersion + 1,
	})
}

// Details returns the caller's profile.
func (s *UserService) Details(userID uint) (*models.User, error) {
	return s.repo.UserByID(userID)
}

// UpdatePassword verifies the current password, stores the new hash, revokes
// outstanding tokens and returns a fresh one.
func (s *UserService) UpdatePassword(userID uint, current, newPassword string) (*models.User, string, error) {
	user, err := s.repo.UserByID(userID)
	if err != nil {
		return nil, "", err
	}
	if !auth.CheckPassword(user.Password, current) {
		return nil, "", ErrBadCredential
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return nil, "", err
	}

	user.Password = hash
	user.TokenVersion++
	if err := s.repo.UpdateUser(user.ID, map[string]interface{}{
		"password":      user.Password,
		"token_version": user.TokenVersion,
	}); err != nil {
		return nil, "", err
	}

	token, err := auth.IssueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
