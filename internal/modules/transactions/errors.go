package transactions

import "errors"

var (
	ErrDuplicateReference = errors.New("transaction reference already exists")
	ErrNotFound           = errors.New("transaction not found")
)
