//go:build cgo
// +build cgo

package schema

import (
	"database/sql"
	"io/ioutil"
	"os"
	"path"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// Builds a real database file with the SQLite library and checks the catalog
// against it.
func TestCatalog_RealDatabase(t *testing.T) {
	assert := require.New(t)

	tempDir, err := ioutil.TempDir(os.TempDir(), "litescan")
	assert.NoError(err)
	defer os.RemoveAll(tempDir)

	dbPath := path.Join(tempDir, "fruit.db")
	db, err := sql.Open("sqlite3", dbPath)
	assert.NoError(err)

	_, err = db.Exec("CREATE TABLE apples (name text, color text)")
	assert.NoError(err)
	_, err = db.Exec("CREATE TABLE oranges (name text)")
	assert.NoError(err)
	assert.NoError(db.Close())

	buf, err := ioutil.ReadFile(dbPath)
	assert.NoError(err)

	catalog, err := Load(buf)
	assert.NoError(err)

	assert.Equal(2, catalog.TableCount())
	assert.Equal([]string{"apples", "oranges"}, catalog.TableNames())
	assert.True(catalog.Exists("apples"))
	assert.False(catalog.Exists("bananas"))

	apples, ok := catalog.Table("apples")
	assert.True(ok)
	assert.Equal("table", apples.Type)
	assert.Greater(apples.RootPage, int64(1))
	assert.Contains(apples.SQL, "CREATE TABLE apples")

	def, err := ParseTableDefinition(apples)
	assert.NoError(err)
	assert.Len(def.Columns, 2)
	assert.Equal("name", def.Columns[0].Name)
}
