package contentapi

// State is what a page should render for a fetched collection.
type State int

const (
	StateReady State = iota
	StateEmpty
	StateError
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateEmpty:
		return "empty"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is a fetched collection plus the failure that emptied it, if any.
// Items is never nil.
type Result[T any] struct {
	Items []T
	Err   error
}

// State reports StateError for a failed fetch. A successful fetch with no
// items is StateEmpty.
func (r Result[T]) State() State {
	switch {
	case r.Err != nil:
		return StateError
	case len(r.Items) == 0:
		return StateEmpty
	default:
		return StateReady
	}
}

func failed[T any](err error) Result[T] {
	return Result[T]{Items: []T{}, Err: err}
}
