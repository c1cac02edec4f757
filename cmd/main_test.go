package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shenikar/emergency_response_system/internal/config"
)

func TestMigrationURL(t *testing.T) {
	cases := map[string]string{
		"postgres://u:p@localhost:5432/db?sslmode=disable": "pgx5://u:p@localhost:5432/db?sslmode=disable",
		"postgresql://u:p@localhost:5432/db":               "pgx5://u:p@localhost:5432/db",
		"pgx5://u:p@localhost:5432/db":                     "pgx5://u:p@localhost:5432/db",
	}
	for in, want := range cases {
		assert.Equal(t, want, migrationURL(in), in)
	}
}

func TestCORSConfig(t *testing.T) {
	open := corsConfig(&config.Config{})
	assert.True(t, open.AllowAllOrigins)
	assert.Empty(t, open.AllowOrigins)
	assert.NoError(t, open.Validate())

	restricted := corsConfig(&config.Config{CORSAllowedOrigins: []string{"https://admin.example.org"}})
	assert.False(t, restricted.AllowAllOrigins)
	assert.Equal(t, []string{"https://admin.example.org"}, restricted.AllowOrigins)
	assert.Contains(t, restricted.AllowHeaders, "X-API-Key")
	assert.Contains(t, restricted.AllowMethods, http.MethodPut)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate"}, names)
}
