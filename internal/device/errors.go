package device

import "fmt"

// ErrorKind classifies gateway failures so callers can map them to transport
// semantics without string matching.
type ErrorKind int

const (
	// KindUnreachable covers network errors and timeouts talking to the
	// appliance; callers may retry.
	KindUnreachable ErrorKind = iota
	// KindAuthFailed is a 401 from the appliance after a Digest header was
	// presented.
	KindAuthFailed
	// KindRejected is any other non-2xx application response.
	KindRejected
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnreachable:
		return "unreachable"
	case KindAuthFailed:
		return "auth_failed"
	case KindRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Error is a typed appliance failure.
type Error struct {
	Kind    ErrorKind
	Command string
	Status  int
	Body    string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("device %s: %s: %v", e.Command, e.Kind, e.Err)
	}
	return fmt.Sprintf("device %s: %s: status %d", e.Command, e.Kind, e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

func unreachable(command string, err error) *Error {
	return &Error{Kind: KindUnreachable, Command: command, Err: err}
}

func authFailed(command string, status int, body string) *Error {
	return &Error{Kind: KindAuthFailed, Command: command, Status: status, Body: body}
}

func rejected(command string, status int, body string) *Error {
	return &Error{Kind: KindRejected, Command: command, Status: status, Body: body}
}
