package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RomiSinizkey/web-programming-chatroom/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SessionUser is the minimal profile projection stored in the session
// for the duration of a login.
type SessionUser struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Login verifies the credentials against the stored bcrypt digest. The
// two failure modes differ in message text only.
func (s *AuthService) Login(email, password string) (*SessionUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}

	return &SessionUser{
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}
