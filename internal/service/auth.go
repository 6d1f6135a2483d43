package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadPassword = errors.New("invalid password")

// StaffAuth guards the staff-only actions. With no password configured
// it stays disabled and the staff endpoints remain open.
type StaffAuth struct {
	hash []byte
}

func NewStaffAuth(password string) (*StaffAuth, error) {
	if password == "" {
		return &StaffAuth{}, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &StaffAuth{hash: hash}, nil
}

func (a *StaffAuth) Enabled() bool {
	return len(a.hash) > 0
}

func (a *StaffAuth) Verify(password string) error {
	if !a.Enabled() {
		return errors.New("staff auth disabled")
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(password)); err != nil {
		return ErrBadPassword
	}
	return nil
}
