package services

import (
	"errors"

	"github.com/Rj088/Fitness-companion-app-sub000/models"
	"github.com/Rj088/Fitness-companion-app-sub000/store"
	"github.com/Rj088/Fitness-companion-app-sub000/utils"
)

// ErrInvalidCredentials covers both unknown-user and wrong-password so the
// response cannot be used to enumerate usernames.
var ErrInvalidCredentials = errors.New("invalid username or password")

// RegisterUser hashes the plaintext password on u and inserts the user.
// Fails with store.ErrDuplicateUsername on a taken username.
func RegisterUser(s *store.Store, u models.User) (models.User, error) {
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return models.User{}, err
	}
	u.Password = hashed
	return s.CreateUser(u)
}

// AuthenticateUser verifies the credentials and returns the user.
func AuthenticateUser(s *store.Store, username, password string) (models.User, error) {
	u, err := s.GetUserByUsername(username)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, u.Password) {
		return models.User{}, ErrInvalidCredentials
	}
	return u, nil
}
