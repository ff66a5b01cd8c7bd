package storage

import "github.com/pkg/errors"

// Keys used for the persisted timer timestamps. Both entries are RFC3339
// strings and are either both present or both absent.
const (
	KeyStartTime = "start_time"
	KeyEndTime   = "end_time"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("storage: key not found")

// KV is the key-value persistence the timer store writes through. It is
// injected rather than reached for globally so tests can substitute Memory.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}
