package canopy

import (
	"github.com/spf13/afero"
)

type snapshotOptions struct {
	// The file system to access. The default file system is implemented
	// by the os package.
	fs FileSystem

	// Where snapshot progress is reported. Defaults to the standard
	// library logger; use NopLogger to silence it.
	logger Logger

	// Whether to fsync the snapshot file before renaming it into place.
	sync bool
}

func defaultSnapshotOptions() *snapshotOptions {
	return &snapshotOptions{
		fs:     afero.NewOsFs(),
		logger: defaultLogger,
		sync:   true,
	}
}

type SnapshotOption interface {
	apply(*snapshotOptions)
}

type funcSnapshotOption struct {
	fn func(*snapshotOptions)
}

func (funcOpt funcSnapshotOption) apply(o *snapshotOptions) {
	funcOpt.fn(o)
}

func newFuncSnapshotOption(fn func(*snapshotOptions)) *funcSnapshotOption {
	return &funcSnapshotOption{
		fn: fn,
	}
}

// WithFileSystem set the file system to access.
func WithFileSystem(fs FileSystem) SnapshotOption {
	return newFuncSnapshotOption(func(o *snapshotOptions) {
		o.fs = fs
	})
}

// WithLogger set where snapshot progress is reported.
func WithLogger(logger Logger) SnapshotOption {
	return newFuncSnapshotOption(func(o *snapshotOptions) {
		o.logger = logger
	})
}

// WithSync control whether the snapshot file is fsynced before it replaces
// the previous one.
func WithSync(sync bool) SnapshotOption {
	return newFuncSnapshotOption(func(o *snapshotOptions) {
		o.sync = sync
	})
}
