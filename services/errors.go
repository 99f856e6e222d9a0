package services

import "errors"

var (
	ErrMissingSelection   = errors.New("all fields must be selected")
	ErrInvalidCredentials = errors.New("invalid admin credentials")
)
