package product

import "github.com/go-faster/errors"

var (
	// ErrRemote is the single kind for any failed call to the remote store.
	ErrRemote = errors.New("remote operation failed")

	ErrMissingFields = errors.New("name and price are required")
	ErrInvalidPrice  = errors.New("price is not a number")
	ErrNotFound      = errors.New("product not found")
	ErrNoEditor      = errors.New("no product is being edited")
	ErrStaleEdit     = errors.New("edit session is no longer open")
	ErrPageSize      = errors.New("items per page not offered")
	ErrInvalidPage   = errors.New("page index must not be negative")
)

// Alert pairs an error with the message shown to the user.
type Alert struct {
	Message string
	Err     error
}

func (a *Alert) Error() string { return a.Message + ": " + a.Err.Error() }

func (a *Alert) Unwrap() error { return a.Err }

func alert(message string, err error) error {
	return &Alert{Message: message, Err: err}
}

// AlertMessage returns the user-facing text carried by err, or a generic
// message when err carries none.
func AlertMessage(err error) string {
	var a *Alert
	if errors.As(err, &a) {
		return a.Message
	}
	return "Something went wrong"
}

// remoteError wraps an adapter failure so that it matches ErrRemote while
// keeping the cause reachable.
type remoteError struct {
	op  string
	err error
}

func (e *remoteError) Error() string { return e.op + ": " + ErrRemote.Error() + ": " + e.err.Error() }

func (e *remoteError) Unwrap() error { return e.err }

func (e *remoteError) Is(target error) bool { return target == ErrRemote }

func remote(op string, err error) error {
	if err == nil {
		return nil
	}
	return &remoteError{op: op, err: err}
}
