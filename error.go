package tizen

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type ErrorCode int

const (
	None ErrorCode = iota
	InvalidParameter
	OutOfMemory
	IoError
	DbError
	FromDbus
	NotExistID
	InvalidOperation
	PermissionDenied
	ServiceNotReady
)

func (code ErrorCode) String() string {
	switch code {
	case None:
		return "none"

	case InvalidParameter:
		return "invalid parameter"

	case OutOfMemory:
		return "out of memory"

	case IoError:
		return "i/o error"

	case DbError:
		return "db error"

	case FromDbus:
		return "dbus error"

	case NotExistID:
		return "id does not exist"

	case InvalidOperation:
		return "invalid operation"

	case PermissionDenied:
		return "permission denied"

	case ServiceNotReady:
		return "service not ready"

	default:
		return fmt.Sprintf("unknown error code (%d)", int(code))
	}
}

// ErrInvalidParameter matches any Error carrying the InvalidParameter code.
var ErrInvalidParameter = Error{Code: InvalidParameter, Message: "invalid parameter entered"}

type Error struct {
	Code    ErrorCode
	Message string
}

func (err Error) Error() string {
	return err.Message
}

// Is reports whether target is an Error with the same code.
func (err Error) Is(target error) bool {
	switch target := target.(type) {
	case Error:
		return target.Code == err.Code

	case *Error:
		return target != nil && target.Code == err.Code

	default:
		return false
	}
}

func newError(code ErrorCode, format string, args ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func invalidParameter() Error {
	return newError(InvalidParameter, "invalid parameter entered")
}

func invalidParameterKey(key string) Error {
	return newError(InvalidParameter, "invalid parameter entered : %v", key)
}

func logger() *logrus.Entry {
	return logrus.WithField("pkg", "go-tizen-api")
}
