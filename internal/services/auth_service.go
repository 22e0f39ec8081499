package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/moodlog/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrAuthEmailExists        = errors.New("auth email exists")
	ErrAuthInvalidLogin       = errors.New("auth invalid login")
	ErrAuthUserLookupFailed   = errors.New("auth user lookup failed")
	ErrAuthUserCreateFailed   = errors.New("auth user create failed")
	ErrAuthPasswordHashFailed = errors.New("auth password hash failed")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

type RegistrationInput struct {
	Email    string
	Password string
	Username string
}

type AuthService struct {
	users      AuthUserRepository
	bcryptCost int
	now        func() time.Time
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{
		users:      users,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// WithBcryptCost lowers hashing cost for tests.
func (service *AuthService) WithBcryptCost(cost int) *AuthService {
	service.bcryptCost = cost
	return service
}

func (service *AuthService) Register(input RegistrationInput) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return models.User{}, err
	}
	username, err := NormalizeUsername(input.Username)
	if err != nil {
		return models.User{}, err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, ErrAuthUserLookupFailed
	}
	if exists {
		return models.User{}, ErrAuthEmailExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), service.bcryptCost)
	if err != nil {
		return models.User{}, ErrAuthPasswordHashFailed
	}

	user := models.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(passwordHash),
		CreatedAt:    service.now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, ErrAuthUserCreateFailed
	}
	return user, nil
}

// Authenticate never tells an unknown email apart from a wrong password.
func (service *AuthService) Authenticate(emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrAuthInvalidLogin
		}
		return models.User{}, ErrAuthUserLookupFailed
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrAuthInvalidLogin
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
