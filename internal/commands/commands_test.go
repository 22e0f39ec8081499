package commands

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/gofiber/fiber/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/moodlog/internal/api"
	"github.com/terraincognita07/moodlog/internal/db"
)

type cliHarness struct {
	t          *testing.T
	baseURL    string
	sessionDir string
}

func newCLIHarness(t *testing.T) *cliHarness {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MOODLOG_CONFIG_PATH", "")
	homedir.Reset()
	t.Cleanup(homedir.Reset)

	previous := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = previous })

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "moodlog-cli.db"), nil)
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	handler, err := api.NewHandler(database, "cli-test-secret-key-0123456789abcdef")
	require.NoError(t, err)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = app.Listener(listener)
	}()
	t.Cleanup(func() { _ = app.Shutdown() })

	return &cliHarness{
		t:          t,
		baseURL:    "http://" + listener.Addr().String(),
		sessionDir: filepath.Join(home, "session"),
	}
}

// run executes one moodlog invocation with stdin fed from input.
func (harness *cliHarness) run(input string, args ...string) (string, error) {
	harness.t.Helper()

	reader, writer, err := os.Pipe()
	require.NoError(harness.t, err)
	defer reader.Close()
	_, err = writer.WriteString(input)
	require.NoError(harness.t, err)
	require.NoError(harness.t, writer.Close())

	var out, errOut bytes.Buffer
	cmd := NewWithIO(reader, &out, &errOut)
	cmd.SetArgs(append([]string{
		"--base-url", harness.baseURL,
		"--session-dir", harness.sessionDir,
		"--lang", "en",
	}, args...))
	err = cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCalendarWorkflowAgainstReferenceServer(t *testing.T) {
	harness := newCLIHarness(t)

	out, err := harness.run("Secret123\n", "register", "--email", "mina@example.com", "--username", "mina")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Account created")

	out, err = harness.run("Secret123\n", "login", "--email", "mina@example.com")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Welcome, mina.")

	out, err = harness.run("", "calendar", "save", "2024-05-01", "--emoji", "😢", "--comment", "tired")
	require.NoError(t, err, out)

	out, err = harness.run("", "calendar", "list")
	require.NoError(t, err, out)
	assert.Contains(t, out, "2024-05-01")
	assert.Contains(t, out, "tired")

	out, err = harness.run("", "calendar", "comment", "2024-05-01", "better", "now")
	require.NoError(t, err, out)

	out, err = harness.run("", "calendar", "show", "2024-05-01")
	require.NoError(t, err, out)
	assert.Contains(t, out, "better now")
	assert.Contains(t, out, "😢")

	out, err = harness.run("", "stats")
	require.NoError(t, err, out)
	assert.Contains(t, out, "1 entries in total")

	out, err = harness.run("", "profile", "set-name", "Mina", "Kim")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Name changed to Mina Kim.")

	out, err = harness.run("", "calendar", "delete", "2024-05-01")
	require.NoError(t, err, out)

	out, err = harness.run("", "calendar")
	require.NoError(t, err, out)
	assert.Contains(t, out, "No emotions recorded yet.")
}

func TestLoginFailureIsReportedOnce(t *testing.T) {
	harness := newCLIHarness(t)

	out, err := harness.run("wrongpass1\n", "login", "--email", "ghost@example.com")
	require.Error(t, err)
	assert.True(t, IsReported(err))
	assert.Contains(t, out, "Login failed")

	out, err = harness.run("", "login", "--email", "ghost@example.com")
	require.Error(t, err)
	assert.Contains(t, out, "Enter your email and password.")
}

func TestLogoutThenListAlertsWithoutSession(t *testing.T) {
	harness := newCLIHarness(t)

	_, err := harness.run("Secret123\n", "register", "--email", "jun@example.com", "--username", "jun")
	require.NoError(t, err)
	_, err = harness.run("Secret123\n", "login", "--email", "jun@example.com")
	require.NoError(t, err)

	out, err := harness.run("", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out.")

	out, err = harness.run("", "calendar", "list")
	require.Error(t, err)
	assert.True(t, IsReported(err))
	assert.Contains(t, out, "Could not load the calendar.")

	out, err = harness.run("", "whoami")
	require.Error(t, err)
	assert.Contains(t, out, "Not logged in.")
}

func TestConfigPrintsEffectiveSettings(t *testing.T) {
	harness := newCLIHarness(t)

	out, err := harness.run("", "config", "--timeout", "3s")
	require.NoError(t, err)
	assert.Contains(t, out, "base_url: "+harness.baseURL)
	assert.Contains(t, out, "timeout: 3s")
	assert.Contains(t, out, "language: en")
	assert.NotContains(t, out, "config_file")
}
