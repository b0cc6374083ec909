package canopy

import (
	"encoding/binary"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// A snapshot is a single file of records in ascending key order, one per
// entry. Since the tree itself is in-memory only, the snapshot is the whole
// persistence story: write one after mutating, read one to come back.
//
// |  crc  |  key_sz  |  value_sz  |  key  |  value  |
// |  crc  |  key_sz  |  value_sz  |  key     |  value      |
const (
	snapRecord_fixedBytes   = 10
	snapRecord_keySizeOff   = 4
	snapRecord_valueSizeOff = 6
	snapRecord_payloadOff   = 10

	maxSnapshotKeyBytes   = 1<<16 - 1        // key_sz is uint16
	maxSnapshotValueBytes = 64 * 1024 * 1024 // 64MB per value
)

// Codec marshals and unmarshals one side of an entry for snapshotting. The
// tree itself never needs this; only the snapshot layer does.
type Codec[T any] struct {
	Marshal   func(T) ([]byte, error)
	Unmarshal func([]byte) (T, error)
}

// StringCodec is a pass-through Codec for string keys or values.
func StringCodec() Codec[string] {
	return Codec[string]{
		Marshal:   func(s string) ([]byte, error) { return []byte(s), nil },
		Unmarshal: func(data []byte) (string, error) { return string(data), nil },
	}
}

// BytesCodec is a pass-through Codec for raw byte keys or values.
func BytesCodec() Codec[[]byte] {
	return Codec[[]byte]{
		Marshal:   func(data []byte) ([]byte, error) { return data, nil },
		Unmarshal: func(data []byte) ([]byte, error) { return data, nil },
	}
}

// WriteSnapshot folds the tree into a snapshot file at path, replacing any
// previous snapshot atomically (written beside it, then renamed over it).
func WriteSnapshot[K, V any](t *Tree[K, V], path string, keys Codec[K], values Codec[V], opts ...SnapshotOption) error {
	opt := defaultSnapshotOptions()
	for _, o := range opts {
		o.apply(opt)
	}

	if err := ensurePath(opt.fs, filepath.Dir(path)); err != nil {
		return errors.Wrap(err, "WriteSnapshot ensure path")
	}

	tmp := path + ".tmp"
	fd, err := opt.fs.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "WriteSnapshot open temp file")
	}

	written := 0
	for k, v := range t.All() {
		keyData, err := keys.Marshal(k)
		if err != nil {
			_ = fd.Close()
			return errors.Wrapf(err, "WriteSnapshot marshal key %v", k)
		}
		valueData, err := values.Marshal(v)
		if err != nil {
			_ = fd.Close()
			return errors.Wrapf(err, "WriteSnapshot marshal value of %v", k)
		}

		record, err := encodeSnapRecord(keyData, valueData)
		if err != nil {
			_ = fd.Close()
			return errors.Wrapf(err, "WriteSnapshot encode record of %v", k)
		}
		if _, err = fd.Write(record); err != nil {
			_ = fd.Close()
			return errors.Wrap(err, "WriteSnapshot write record")
		}
		written++
	}

	if opt.sync {
		if err = fd.Sync(); err != nil {
			_ = fd.Close()
			return errors.Wrap(err, "WriteSnapshot sync")
		}
	}
	if err = fd.Close(); err != nil {
		return errors.Wrap(err, "WriteSnapshot close")
	}

	if err = opt.fs.Rename(tmp, path); err != nil {
		return errors.Wrap(err, "WriteSnapshot rename into place")
	}

	opt.logger.Log("snapshot %s written, %d entries", path, written)
	return nil
}

// ReadSnapshot rebuilds a tree from a snapshot file by inserting each record
// in turn. Records are checksummed individually; any mismatch or short read
// aborts with ErrSnapshotCorrupted or ErrSnapshotTruncated.
func ReadSnapshot[K, V any](cmp Comparator[K], path string, keys Codec[K], values Codec[V], opts ...SnapshotOption) (*Tree[K, V], error) {
	opt := defaultSnapshotOptions()
	for _, o := range opts {
		o.apply(opt)
	}

	fd, err := opt.fs.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "ReadSnapshot open")
	}
	defer func() { _ = fd.Close() }()

	t := New[K, V](cmp)
	header := make([]byte, snapRecord_fixedBytes)
	for {
		if _, err = io.ReadFull(fd, header); err != nil {
			if err == io.EOF {
				break
			}
			if err == io.ErrUnexpectedEOF {
				return nil, errors.Wrapf(ErrSnapshotTruncated, "read %s", path)
			}
			return nil, errors.Wrap(err, "ReadSnapshot read header")
		}

		crc := binary.BigEndian.Uint32(header)
		keySize := binary.BigEndian.Uint16(header[snapRecord_keySizeOff:])
		valueSize := binary.BigEndian.Uint32(header[snapRecord_valueSizeOff:])
		if valueSize > maxSnapshotValueBytes {
			return nil, errors.Wrapf(ErrSnapshotCorrupted, "read %s: value size %d", path, valueSize)
		}

		payload := make([]byte, int(keySize)+int(valueSize))
		if _, err = io.ReadFull(fd, payload); err != nil {
			return nil, errors.Wrapf(ErrSnapshotTruncated, "read %s", path)
		}

		actual := crc32.ChecksumIEEE(header[snapRecord_keySizeOff:])
		actual = crc32.Update(actual, crc32.IEEETable, payload)
		if actual != crc {
			return nil, errors.Wrapf(ErrSnapshotCorrupted, "read %s: crc mismatch", path)
		}

		key, err := keys.Unmarshal(payload[:keySize])
		if err != nil {
			return nil, errors.Wrap(err, "ReadSnapshot unmarshal key")
		}
		value, err := values.Unmarshal(payload[keySize:])
		if err != nil {
			return nil, errors.Wrap(err, "ReadSnapshot unmarshal value")
		}
		t = t.Insert(key, value)
	}

	opt.logger.Log("snapshot %s loaded, %d entries", path, t.Size())
	return t, nil
}

func encodeSnapRecord(key, value []byte) ([]byte, error) {
	if len(key) > maxSnapshotKeyBytes || len(value) > maxSnapshotValueBytes {
		return nil, ErrKeyOrValueTooLong
	}

	data := make([]byte, snapRecord_fixedBytes+len(key)+len(value))
	binary.BigEndian.PutUint16(data[snapRecord_keySizeOff:], uint16(len(key)))
	binary.BigEndian.PutUint32(data[snapRecord_valueSizeOff:], uint32(len(value)))
	copy(data[snapRecord_payloadOff:], key)
	copy(data[snapRecord_payloadOff+len(key):], value)

	crc := crc32.ChecksumIEEE(data[snapRecord_keySizeOff:])
	binary.BigEndian.PutUint32(data, crc)

	return data, nil
}

// ensurePath check whether path exists as a directory, creating it if not.
func ensurePath(fs FileSystem, path string) error {
	exists, err := afero.DirExists(fs, path)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	return fs.MkdirAll(path, 0744)
}
