package user

import (
	"strings"
	"time"

	coinflow_errors "coinflow/internal"
	"coinflow/internal/db/models/postgres/public/model"
	db "coinflow/internal/db/query"
	"coinflow/internal/repository"
)

type UserService interface {
	CreateUser(username, email string, firstName, lastName *string) (*model.AppUser, error)
	GetUserByID(id int64) (*model.AppUser, error)
	GetUserByUsername(username string) (*model.AppUser, error)
	GetUserByEmail(email string) (*model.AppUser, error)
	ListUsers() ([]model.AppUser, error)
}

type userServiceHandler struct {
	UserRepository repository.UserRepository
}

func NewUserService(userRepository repository.UserRepository) UserService {
	return userServiceHandler{
		UserRepository: userRepository,
	}
}

func (s userServiceHandler) CreateUser(username, email string, firstName, lastName *string) (*model.AppUser, error) {
	existing, err := s.UserRepository.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, coinflow_errors.ErrDuplicateUser{Field: "username", Value: username}
	}

	existing, err = s.UserRepository.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, coinflow_errors.ErrDuplicateUser{Field: "email", Value: email}
	}

	now := time.Now().UTC()
	created, err := s.UserRepository.Add(model.AppUser{
		Username:  username,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		// the unique constraints back-stop concurrent creates that slip
		// past the pre-checks above
		if db.IsDuplicateEntryErr(err) {
			if strings.Contains(err.Error(), "email") {
				return nil, coinflow_errors.ErrDuplicateUser{Field: "email", Value: email}
			}
			return nil, coinflow_errors.ErrDuplicateUser{Field: "username", Value: username}
		}
		return nil, err
	}

	return created, nil
}

func (s userServiceHandler) GetUserByID(id int64) (*model.AppUser, error) {
	user, err := s.UserRepository.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, coinflow_errors.ErrUserNotFound{ID: id}
	}
	return user, nil
}

func (s userServiceHandler) GetUserByUsername(username string) (*model.AppUser, error) {
	user, err := s.UserRepository.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, coinflow_errors.ErrUserNotFound{Username: username}
	}
	return user, nil
}

func (s userServiceHandler) GetUserByEmail(email string) (*model.AppUser, error) {
	user, err := s.UserRepository.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, coinflow_errors.ErrUserNotFound{Email: email}
	}
	return user, nil
}

func (s userServiceHandler) ListUsers() ([]model.AppUser, error) {
	return s.UserRepository.List()
}
