package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns what it printed to
// stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMigrateStatusRollback(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "lahman.db")

	out, err := run(t, "status", "--db-path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "pending")
	assert.NotContains(t, out, "applied")

	out, err = run(t, "migrate", "--db-path", path)
	require.NoError(t, err)
	assert.Equal(t, "schema at version 1\n", out)

	out, err = run(t, "migrate", "--db-path", path)
	require.NoError(t, err)
	assert.Equal(t, "schema at version 1\n", out)

	out, err = run(t, "status", "--db-path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "applied")
	assert.Contains(t, out, "APPLIED AT")

	out, err = run(t, "rollback", "--db-path", path)
	require.NoError(t, err)
	assert.Equal(t, "schema at version 0\n", out)
}

func TestConfigFileSelectsDatabase(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile("lahman.yaml", []byte("database:\n  path: from-file.db\nlog:\n  level: warn\n"), 0o600))

	_, err := run(t, "migrate")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "from-file.db"))
}

func TestInvalidConfigIsRejected(t *testing.T) {
	chdir(t, t.TempDir())
	_, err := run(t, "migrate", "--driver", "oracle")
	require.Error(t, err)
}

func TestDDL(t *testing.T) {
	chdir(t, t.TempDir())

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"ddl", "--dialect", "postgres"}, `CREATE TABLE "people" (`},
		{[]string{"ddl", "--dialect", "mysql"}, "CREATE TABLE `people` ("},
		{[]string{"ddl"}, `CREATE TABLE "people" (`},
		{[]string{"ddl", "--driver", "pgx", "--db-host", "localhost"}, `"pitching_uq_player_year_team_stint"`},
		{[]string{"ddl", "-d", "sqlite", "--drop"}, `DROP TABLE IF EXISTS "people";`},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestDDLOrdersParentsFirst(t *testing.T) {
	chdir(t, t.TempDir())
	out, err := run(t, "ddl", "--dialect", "mysql")
	require.NoError(t, err)

	people := strings.Index(out, "CREATE TABLE `people`")
	batting := strings.Index(out, "CREATE TABLE `batting`")
	require.GreaterOrEqual(t, people, 0)
	require.GreaterOrEqual(t, batting, 0)
	assert.Less(t, people, batting)
	assert.Equal(t, 27, strings.Count(out, "CREATE TABLE"))
}

func TestDDLUnknownDialect(t *testing.T) {
	chdir(t, t.TempDir())
	_, err := run(t, "ddl", "--dialect", "oracle")
	require.ErrorContains(t, err, `unknown dialect "oracle"`)
}

func TestTables(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := run(t, "tables")
	require.NoError(t, err)
	for _, name := range []string{"people", "teams", "batting", "wobaweights"} {
		assert.Contains(t, out, name)
	}

	out, err = run(t, "tables", "leagues")
	require.NoError(t, err)
	assert.Contains(t, out, "lgID")
	assert.Contains(t, out, "VARCHAR(2)")
	assert.Contains(t, out, "PRI")

	_, err = run(t, "tables", "boxscores")
	require.ErrorContains(t, err, `unknown table "boxscores"`)
}

func TestCheck(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := run(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog ok: 27 tables")
	assert.Contains(t, out, "uq_player_year_team_stint")
	assert.Contains(t, out, "pitching_uq_player_year_team_stint")
	assert.Contains(t, out, "teams[divID] -> divisions[divID]")
	assert.Contains(t, out, "enforced")
	assert.Contains(t, out, "skipped")
}

func TestVersion(t *testing.T) {
	chdir(t, t.TempDir())
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lahman dev")
	assert.Contains(t, out, "schema: 1")
}

// chdir changes the working directory to dir for the duration of the test,
// restoring the previous one on cleanup (equivalent to testing.T.Chdir,
// which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
