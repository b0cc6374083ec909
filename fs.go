package canopy

import (
	"github.com/spf13/afero"
)

// FileSystem is the interface the snapshot layer writes through, so that the
// default os file system can be replaced by other implementations.
//
// It's useful for testing, since it can be replaced by a mock file system.
type FileSystem = afero.Fs
