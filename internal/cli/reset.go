// Package cli holds the interactive and operator helpers shared by the moodlog binaries.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/terraincognita07/moodlog/internal/db"
	"github.com/terraincognita07/moodlog/internal/security"
	"github.com/terraincognita07/moodlog/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const temporaryPasswordLength = 12

// RunResetPasswordCommand replaces the password of the account registered under
// email with a fresh temporary one and prints it to out.
func RunResetPasswordCommand(dbPath string, email string, out io.Writer, logger *zap.Logger) error {
	normalizedEmail := services.NormalizeAuthEmail(email)
	if normalizedEmail == "" {
		return errors.New("a valid email is required")
	}

	database, err := db.OpenSQLite(dbPath, logger)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	users := db.NewUserRepository(database)
	user, err := users.FindByNormalizedEmail(normalizedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s not found", normalizedEmail)
		}
		return fmt.Errorf("load user: %w", err)
	}

	temporaryPassword, err := security.TemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}
	if err := services.NewAccountService(users).SetPassword(user.ID, temporaryPassword); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	if logger != nil {
		logger.Info("password reset", zap.Uint("user_id", user.ID))
	}
	fmt.Fprintln(out, "Password reset successful")
	fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
	fmt.Fprintln(out, "Ask the user to change it after logging in.")
	return nil
}
