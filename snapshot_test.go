package canopy_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	canopy "github.com/yeqown/ordered-canopy"
)

type snapshotTestSuite struct {
	suite.Suite

	fs   afero.Fs
	tree *canopy.Tree[string, string]
}

func (su *snapshotTestSuite) SetupTest() {
	su.fs = afero.NewMemMapFs()

	su.tree = canopy.NewOrdered[string, string]()
	for i := 0; i < 100; i++ {
		su.tree = su.tree.Insert("key"+strconv.Itoa(i), "value"+strconv.Itoa(i))
	}
}

func (su *snapshotTestSuite) write(path string) {
	err := canopy.WriteSnapshot(su.tree, path,
		canopy.StringCodec(), canopy.StringCodec(),
		canopy.WithFileSystem(su.fs), canopy.WithLogger(canopy.NopLogger()))
	su.Require().NoError(err)
}

func (su *snapshotTestSuite) Test_WriteRead_roundTrip() {
	su.write("testdata/tree.snap")

	restored, err := canopy.ReadSnapshot(canopy.Ordered[string], "testdata/tree.snap",
		canopy.StringCodec(), canopy.StringCodec(),
		canopy.WithFileSystem(su.fs), canopy.WithLogger(canopy.NopLogger()))
	su.Require().NoError(err)

	su.Equal(su.tree.Size(), restored.Size())
	su.Equal(su.tree.ToList(), restored.ToList())

	v, ok := restored.Lookup("key42")
	su.True(ok)
	su.Equal("value42", v)
}

func (su *snapshotTestSuite) Test_Write_replacesPrevious() {
	su.write("testdata/tree.snap")

	smaller := canopy.NewOrdered[string, string]().Insert("only", "entry")
	err := canopy.WriteSnapshot(smaller, "testdata/tree.snap",
		canopy.StringCodec(), canopy.StringCodec(),
		canopy.WithFileSystem(su.fs), canopy.WithLogger(canopy.NopLogger()))
	su.Require().NoError(err)

	restored, err := canopy.ReadSnapshot(canopy.Ordered[string], "testdata/tree.snap",
		canopy.StringCodec(), canopy.StringCodec(),
		canopy.WithFileSystem(su.fs), canopy.WithLogger(canopy.NopLogger()))
	su.Require().NoError(err)
	su.Equal(1, restored.Size())
}

func (su *snapshotTestSuite) Test_Read_missingFile() {
	_, err := canopy.ReadSnapshot(canopy.Ordered[string], "testdata/nope.snap",
		canopy.StringCodec(), canopy.StringCodec(),
		canopy.WithFileSystem(su.fs), canopy.WithLogger(canopy.NopLogger()))
	su.Error(err)
}

func (su *snapshotTestSuite) Test_Read_corruptedRecord() {
	su.write("testdata/tree.snap")

	data, err := afero.ReadFile(su.fs, "testdata/tree.snap")
	su.Require().NoError(err)
	data[len(data)-1] ^= 0xff // flip a payload byte of the last record
	su.Require().NoError(afero.WriteFile(su.fs, "testdata/tree.snap", data, 0644))

	_, err = canopy.ReadSnapshot(canopy.Ordered[string], "testdata/tree.snap",
		canopy.StringCodec(), canopy.StringCodec(),
		canopy.WithFileSystem(su.fs), canopy.WithLogger(canopy.NopLogger()))
	su.ErrorIs(err, canopy.ErrSnapshotCorrupted)
}

func (su *snapshotTestSuite) Test_Read_truncatedFile() {
	su.write("testdata/tree.snap")

	data, err := afero.ReadFile(su.fs, "testdata/tree.snap")
	su.Require().NoError(err)
	su.Require().NoError(afero.WriteFile(su.fs, "testdata/tree.snap", data[:len(data)-3], 0644))

	_, err = canopy.ReadSnapshot(canopy.Ordered[string], "testdata/tree.snap",
		canopy.StringCodec(), canopy.StringCodec(),
		canopy.WithFileSystem(su.fs), canopy.WithLogger(canopy.NopLogger()))
	su.ErrorIs(err, canopy.ErrSnapshotTruncated)
}

func (su *snapshotTestSuite) Test_Write_oversizeKey() {
	oversized := su.tree.Insert(strings.Repeat("k", 1<<17), "value")

	err := canopy.WriteSnapshot(oversized, "testdata/tree.snap",
		canopy.StringCodec(), canopy.StringCodec(),
		canopy.WithFileSystem(su.fs), canopy.WithLogger(canopy.NopLogger()))
	su.ErrorIs(err, canopy.ErrKeyOrValueTooLong)
}

func Test_Snapshot(t *testing.T) {
	suite.Run(t, new(snapshotTestSuite))
}
