package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_UpAndDown(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "leads.db"))
	require.NoError(t, err)
	defer db.Close()

	goose.SetBaseFS(FS)
	t.Cleanup(func() { goose.SetBaseFS(nil) })
	require.NoError(t, goose.SetDialect("sqlite3"))

	require.NoError(t, goose.Up(db, "."))
	version, err := goose.GetDBVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	_, err = db.Exec(`INSERT INTO submissions (id, created_at, updated_at, name, email, message)
		VALUES ('6f1c2a4e-52d5-4c1b-9a0e-2f0b1e7c3d11', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP, 'Ada', 'ada@example.com', 'Hello')`)
	require.NoError(t, err)

	var status string
	require.NoError(t, db.QueryRow(`SELECT status FROM submissions`).Scan(&status))
	assert.Equal(t, "received", status)

	require.NoError(t, goose.Down(db, "."))
	_, err = db.Exec(`SELECT 1 FROM submissions`)
	assert.Error(t, err)
}
