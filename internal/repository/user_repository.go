package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"coinflow/internal/db/models/postgres/public/model"
	. "coinflow/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

type UserRepository interface {
	Add(user model.AppUser) (*model.AppUser, error)
	GetByID(id int64) (*model.AppUser, error)
	GetByUsername(username string) (*model.AppUser, error)
	GetByEmail(email string) (*model.AppUser, error)
	List() ([]model.AppUser, error)
}

type userRepositoryHandler struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return userRepositoryHandler{
		DB: db,
	}
}

func (h userRepositoryHandler) Add(user model.AppUser) (*model.AppUser, error) {
	stmt := AppUser.INSERT(AppUser.MutableColumns).
		MODEL(user).
		RETURNING(AppUser.AllColumns)

	out := &model.AppUser{}
	err := stmt.Query(h.DB, out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user %s: %w", user.Username, err)
	}

	return out, nil
}

func (h userRepositoryHandler) GetByID(id int64) (*model.AppUser, error) {
	query := AppUser.SELECT(AppUser.AllColumns).
		WHERE(
			AppUser.ID.EQ(postgres.Int(id)),
		)

	user := &model.AppUser{}
	err := query.Query(h.DB, user)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user id %d: %w", id, err)
	}

	return user, nil
}

func (h userRepositoryHandler) GetByUsername(username string) (*model.AppUser, error) {
	query := AppUser.SELECT(AppUser.AllColumns).
		WHERE(
			AppUser.Username.EQ(postgres.String(username)),
		)

	user := &model.AppUser{}
	err := query.Query(h.DB, user)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user %s: %w", username, err)
	}

	return user, nil
}

func (h userRepositoryHandler) GetByEmail(email string) (*model.AppUser, error) {
	query := AppUser.SELECT(AppUser.AllColumns).
		WHERE(
			AppUser.Email.EQ(postgres.String(email)),
		)

	user := &model.AppUser{}
	err := query.Query(h.DB, user)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user by email %s: %w", email, err)
	}

	return user, nil
}

func (h userRepositoryHandler) List() ([]model.AppUser, error) {
	query := AppUser.SELECT(AppUser.AllColumns).
		ORDER_BY(AppUser.CreatedAt.DESC())

	users := []model.AppUser{}
	err := query.Query(h.DB, &users)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}
