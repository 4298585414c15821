package db

// Op constants name store operations for error context.
const (
	OpPing            = "ping"
	OpListCollections = "listCollections"
	OpFind            = "find"
	OpAggregate       = "aggregate"
)

// Error wraps an underlying driver error with the operation name.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
