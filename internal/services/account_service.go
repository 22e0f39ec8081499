package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/moodlog/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAccountPasswordChangeInvalidInput = errors.New("account password change invalid input")
	ErrAccountPasswordMismatch           = errors.New("account password mismatch")
	ErrAccountInvalidCurrentPassword     = errors.New("account invalid current password")
	ErrAccountNewPasswordMustDiffer      = errors.New("account new password must differ")
	ErrAccountPasswordMissing            = errors.New("account password missing")
	ErrAccountUpdateFailed               = errors.New("account update failed")
	ErrAccountDeleteFailed               = errors.New("account delete failed")
)

type AccountUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateUsername(userID uint, username string) error
	UpdatePassword(userID uint, passwordHash string) error
	DeleteAccountAndRelatedData(userID uint) error
}

type PasswordChangeInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

type AccountService struct {
	users      AccountUserRepository
	bcryptCost int
}

func NewAccountService(users AccountUserRepository) *AccountService {
	return &AccountService{users: users, bcryptCost: bcrypt.DefaultCost}
}

func (service *AccountService) WithBcryptCost(cost int) *AccountService {
	service.bcryptCost = cost
	return service
}

func (service *AccountService) UpdateUsername(userID uint, rawUsername string) (models.User, error) {
	username, err := NormalizeUsername(rawUsername)
	if err != nil {
		return models.User{}, err
	}
	if err := service.users.UpdateUsername(userID, username); err != nil {
		return models.User{}, ErrAccountUpdateFailed
	}
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, ErrAccountUpdateFailed
	}
	return user, nil
}

func (service *AccountService) ValidatePasswordChange(passwordHash string, input PasswordChangeInput) error {
	current := strings.TrimSpace(input.CurrentPassword)
	next := strings.TrimSpace(input.NewPassword)
	confirm := strings.TrimSpace(input.ConfirmPassword)

	if current == "" || next == "" || confirm == "" {
		return ErrAccountPasswordChangeInvalidInput
	}
	if next != confirm {
		return ErrAccountPasswordMismatch
	}
	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(current)) != nil {
		return ErrAccountInvalidCurrentPassword
	}
	if current == next {
		return ErrAccountNewPasswordMustDiffer
	}
	return ValidatePasswordStrength(next)
}

func (service *AccountService) ChangePassword(userID uint, input PasswordChangeInput) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return ErrAccountUpdateFailed
	}
	if err := service.ValidatePasswordChange(user.PasswordHash, input); err != nil {
		return err
	}
	return service.SetPassword(userID, strings.TrimSpace(input.NewPassword))
}

// SetPassword skips the current-password check. Operator tooling uses it for resets.
func (service *AccountService) SetPassword(userID uint, password string) error {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), service.bcryptCost)
	if err != nil {
		return ErrAuthPasswordHashFailed
	}
	if err := service.users.UpdatePassword(userID, string(passwordHash)); err != nil {
		return ErrAccountUpdateFailed
	}
	return nil
}

func (service *AccountService) DeleteAccount(userID uint, rawPassword string) error {
	password := strings.TrimSpace(rawPassword)
	if password == "" {
		return ErrAccountPasswordMissing
	}
	user, err := service.users.FindByID(userID)
	if err != nil {
		return ErrAccountDeleteFailed
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return ErrAccountInvalidCurrentPassword
	}
	if err := service.users.DeleteAccountAndRelatedData(userID); err != nil {
		return ErrAccountDeleteFailed
	}
	return nil
}
