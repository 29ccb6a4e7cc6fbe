package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/RomiSinizkey/web-programming-chatroom/internal/config"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// names are lowercased before validation, so letters-only means a-z
	nameRegex = regexp.MustCompile(`^[a-z]{3,32}$`)
)

// PendingRegistration is the step-1 data carried between the two wizard
// requests inside a signed, short-lived client-held token.
type PendingRegistration struct {
	Email     string
	FirstName string
	LastName  string
}

// RegisterService drives the two-step signup wizard. The only state
// between steps is the token it issues; nothing is persisted until
// Finalize succeeds.
type RegisterService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewRegisterService(db *gorm.DB, cfg *config.Config) *RegisterService {
	return &RegisterService{db: db, cfg: cfg}
}

// Start validates the step-1 fields and, when the email is free, issues
// a signed token holding them with exp = now + the wizard TTL.
func (s *RegisterService) Start(email, firstName, lastName string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	firstName = strings.ToLower(strings.TrimSpace(firstName))
	lastName = strings.ToLower(strings.TrimSpace(lastName))

	if email == "" || firstName == "" || lastName == "" {
		return "", ErrAllFieldsRequired
	}
	if !emailRegex.MatchString(email) {
		return "", ErrInvalidEmail
	}
	if !nameRegex.MatchString(firstName) || !nameRegex.MatchString(lastName) {
		return "", ErrInvalidName
	}

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to check email: %w", err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"email":      email,
		"first_name": firstName,
		"last_name":  lastName,
		"iat":        now.Unix(),
		"exp":        now.Add(s.cfg.RegisterTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ParseToken verifies the token signature and expiry and returns the
// pending step-1 data. Expiry is reported as ErrRegistrationExpired so
// callers can degrade to a restart rather than a hard failure.
func (s *RegisterService) ParseToken(raw string) (*PendingRegistration, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrRegistrationExpired
		}
		return nil, ErrInvalidToken
	}
	return PendingFromClaims(token.Claims)
}

// PendingFromClaims extracts the pending registration from parsed claims.
func PendingFromClaims(claims jwt.Claims) (*PendingRegistration, error) {
	mc, ok := claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, _ := mc["email"].(string)
	firstName, _ := mc["first_name"].(string)
	lastName, _ := mc["last_name"].(string)
	if email == "" || firstName == "" || lastName == "" {
		return nil, ErrInvalidToken
	}
	return &PendingRegistration{Email: email, FirstName: firstName, LastName: lastName}, nil
}

// Finalize validates the step-2 passwords, re-checks email uniqueness
// (a second registration may have completed during the wizard's
// lifetime) and creates the user. The store's primary-key constraint is
// the final arbiter of the registration race; a duplicate-key insert is
// reported as the same conflict outcome.
func (s *RegisterService) Finalize(pending *PendingRegistration, password, password2 string) error {
	password = strings.TrimSpace(password)
	password2 = strings.TrimSpace(password2)

	if password == "" || password2 == "" {
		return ErrPasswordRequired
	}
	if password != password2 {
		return ErrPasswordMismatch
	}
	if len(password) < 3 || len(password) > 32 {
		return ErrPasswordLength
	}

	var existing models.User
	if err := s.db.Where("email = ?", pending.Email).First(&existing).Error; err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:     pending.Email,
		FirstName: pending.FirstName,
		LastName:  pending.LastName,
		Password:  string(hash),
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
