package main

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readDownMigrations читает down-миграции из каталога migrations по версиям
func readDownMigrations(t *testing.T) map[uint]string {
	t.Helper()
	drv, err := (&file.File{}).Open("file://../migrations")
	require.NoError(t, err)
	t.Cleanup(func() { _ = drv.Close() })

	downs := make(map[uint]string)
	version, err := drv.First()
	for err == nil {
		r, _, readErr := drv.ReadDown(version)
		require.NoError(t, readErr, "version %d has no down migration", version)
		body, readErr := io.ReadAll(r)
		_ = r.Close()
		require.NoError(t, readErr)
		downs[version] = string(body)

		version, err = drv.Next(version)
	}
	require.True(t, errors.Is(err, fs.ErrNotExist), "unexpected error: %v", err)
	return downs
}

func TestMigrations_EveryVersionHasDown(t *testing.T) {
	downs := readDownMigrations(t)

	assert.Contains(t, downs, uint(1))
	assert.Contains(t, downs, uint(2))
	assert.Contains(t, downs, uint(3))
}

func TestMigrations_SeedRollbackKeepsReferencedRows(t *testing.T) {
	downs := readDownMigrations(t)

	// Справочники, на которые ссылаются инциденты, не удаляются раньше таблицы incidents
	assert.Contains(t, downs[2], "NOT EXISTS (SELECT 1 FROM incidents i WHERE i.service_id = s.id)")
	assert.Contains(t, downs[3], "NOT EXISTS (SELECT 1 FROM incidents i WHERE i.resident_id = r.id)")
	assert.Contains(t, downs[1], "DROP TABLE IF EXISTS incidents;")
}
