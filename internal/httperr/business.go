package httperr

import "errors"

type Kind int

const (
	KindInvalid Kind = iota
	KindConflict
	KindNotFound
)

// BusinessError is a rule violation raised inside a use case. Code is a
// stable machine tag, Message the human text the HTTP contract promises.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Message
}

func Invalid(code, message string) error {
	return BusinessError{Kind: KindInvalid, Code: code, Message: message}
}

func Conflict(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
