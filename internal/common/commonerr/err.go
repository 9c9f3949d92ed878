package commonerr

// Kind is an error that can be declared as a constant.
type Kind string

func (k Kind) Error() string { return string(k) }

// ErrNotFound is returned by stores when no record has the requested id.
const ErrNotFound Kind = "not found"

// Error is the body of every failed HTTP response.
type Error struct {
	Err string `json:"err"`
}

func New(msg string) Error {
	return Error{Err: msg}
}
