package canopy

import "github.com/pkg/errors"

var (
	ErrKeyNotFound       = errors.New("key not found")
	ErrKeyOrValueTooLong = errors.New("key or value is oversize")
	ErrSnapshotCorrupted = errors.New("snapshot corrupted")
	ErrSnapshotTruncated = errors.New("snapshot truncated")
)
