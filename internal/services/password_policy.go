package services

import (
	"errors"
	"unicode/utf8"
)

const MinPasswordLength = 8

var ErrPasswordTooShort = errors.New("password too short")

func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
