package payments

import "errors"

var ErrInvalidSignature = errors.New("invalid webhook signature")
