package postgres

import (
	"io/fs"
	"testing"

	"github.com/bissquit/campus-registry/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateURL(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@host:5432/db":   "pgx5://u:p@host:5432/db",
		"postgresql://u:p@host:5432/db": "pgx5://u:p@host:5432/db",
		"pgx5://u:p@host:5432/db":       "pgx5://u:p@host:5432/db",
	}
	for in, want := range tests {
		assert.Equal(t, want, migrateURL(in), in)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	up, err := fs.Glob(migrations.FS, "*.up.sql")
	require.NoError(t, err)
	down, err := fs.Glob(migrations.FS, "*.down.sql")
	require.NoError(t, err)

	assert.NotEmpty(t, up)
	assert.Len(t, down, len(up), "every migration has a rollback")
}

func TestCalcBackoff(t *testing.T) {
	assert.Equal(t, "1s", calcBackoff(1).String())
	assert.Equal(t, "4s", calcBackoff(3).String())
	assert.Equal(t, "16s", calcBackoff(10).String())
}
