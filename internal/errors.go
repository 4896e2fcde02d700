package coinflow_errors

import "fmt"

type ErrUserNotFound struct {
	ID       int64
	Username string
	Email    string
}

func (e ErrUserNotFound) Error() string {
	if e.Username != "" {
		return fmt.Sprintf("user not found with username %s", e.Username)
	}
	if e.Email != "" {
		return fmt.Sprintf("user not found with email %s", e.Email)
	}
	return fmt.Sprintf("user not found with id %d", e.ID)
}

type ErrDuplicateUser struct {
	Field string
	Value string
}

func (e ErrDuplicateUser) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Field, e.Value)
}
