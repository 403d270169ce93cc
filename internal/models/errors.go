package models

import (
	"errors"
)

var (
	ErrKeyExists   = errors.New("models: key already exists")
	ErrInvalidDate = errors.New("models: invalid calendar date")
	ErrIDExhausted = errors.New("models: could not allocate a free bike id")
)
