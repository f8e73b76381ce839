package command

import (
	"encoding/binary"
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/litescan/litescan/internal/storage"
)

func TestReadRootPage_PageSizeSmallerThanFileHeader(t *testing.T) {
	r := require.New(t)

	tempDir, err := ioutil.TempDir(os.TempDir(), "litescan")
	r.NoError(err)
	defer os.RemoveAll(tempDir)

	// Valid magic, but a declared page size of 50 bytes.
	header := make([]byte, storage.FileHeaderSize)
	copy(header, "SQLite format 3\x00")
	binary.BigEndian.PutUint16(header[16:], 50)

	dbPath := path.Join(tempDir, "tiny.db")
	r.NoError(ioutil.WriteFile(dbPath, header, 0644))

	_, err = readRootPage(dbPath)
	r.ErrorIs(err, storage.ErrTruncated)
}

func TestReadRootPage_NotSQLite(t *testing.T) {
	r := require.New(t)

	tempDir, err := ioutil.TempDir(os.TempDir(), "litescan")
	r.NoError(err)
	defer os.RemoveAll(tempDir)

	dbPath := path.Join(tempDir, "plain.txt")
	r.NoError(ioutil.WriteFile(dbPath, make([]byte, 200), 0644))

	_, err = readRootPage(dbPath)
	r.ErrorIs(err, storage.ErrBadMagic)
}
