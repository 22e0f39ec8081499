package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/terraincognita07/moodlog/internal/db"
	"github.com/terraincognita07/moodlog/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func seedResetUser(t *testing.T, dbPath string) {
	t.Helper()

	database, err := db.OpenSQLite(dbPath, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	defer sqlDB.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("OldPass123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Email: "reset@example.com", Username: "reset", PasswordHash: string(hash)}
	if err := db.NewUserRepository(database).Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
}

func TestRunResetPasswordCommandReplacesHash(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reset.db")
	seedResetUser(t, dbPath)

	var out bytes.Buffer
	if err := RunResetPasswordCommand(dbPath, "  RESET@example.com ", &out, nil); err != nil {
		t.Fatalf("RunResetPasswordCommand returned error: %v", err)
	}

	var temporary string
	for _, line := range strings.Split(out.String(), "\n") {
		if value, ok := strings.CutPrefix(line, "Temporary password: "); ok {
			temporary = value
		}
	}
	if temporary == "" {
		t.Fatalf("expected temporary password in output, got %q", out.String())
	}

	database, err := db.OpenSQLite(dbPath, nil)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	sqlDB, _ := database.DB()
	defer sqlDB.Close()

	user, err := db.NewUserRepository(database).FindByNormalizedEmail("reset@example.com")
	if err != nil {
		t.Fatalf("load user: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(temporary)); err != nil {
		t.Fatalf("expected stored hash to match temporary password: %v", err)
	}
}

func TestRunResetPasswordCommandRejectsUnknownOrInvalidEmail(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reset.db")
	seedResetUser(t, dbPath)

	if err := RunResetPasswordCommand(dbPath, "not-an-email", &bytes.Buffer{}, nil); err == nil {
		t.Fatal("expected invalid email to fail")
	}
	if err := RunResetPasswordCommand(dbPath, "missing@example.com", &bytes.Buffer{}, nil); err == nil {
		t.Fatal("expected unknown user to fail")
	}
}

func TestReadPasswordFromPipe(t *testing.T) {
	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer reader.Close()

	if _, err := writer.WriteString("s3cret pass\r\n"); err != nil {
		t.Fatalf("write pipe: %v", err)
	}
	writer.Close()

	var out bytes.Buffer
	password, err := ReadPassword("Password: ", reader, &out)
	if err != nil {
		t.Fatalf("ReadPassword returned error: %v", err)
	}
	if password != "s3cret pass" {
		t.Fatalf("ReadPassword = %q, want %q", password, "s3cret pass")
	}
	if out.String() != "Password: " {
		t.Fatalf("prompt = %q", out.String())
	}
}

func TestReadLineRejectsBlank(t *testing.T) {
	if _, err := ReadLine(strings.NewReader("   \n")); err != ErrEmptyInput {
		t.Fatalf("ReadLine error = %v, want ErrEmptyInput", err)
	}
}
