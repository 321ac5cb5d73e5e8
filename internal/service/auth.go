package service

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/teamtrack/backend/internal/model"
	jwtpkg "github.com/teamtrack/backend/pkg/jwt"
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	jwtExpire int
}

func NewAuthService(db *gorm.DB, jwtSecret string, jwtExpire int) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret, jwtExpire: jwtExpire}
}

func (s *AuthService) Signup(name, phone, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	s.db.Model(&model.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("40002:User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Phone:        phone,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user model.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", time.Time{}, fmt.Errorf("40102:Invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", time.Time{}, fmt.Errorf("40102:Invalid credentials")
	}

	token, expireAt, err := jwtpkg.GenerateToken(s.jwtSecret, user.ID, user.Email, s.jwtExpire)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expireAt, nil
}

// SearchUsers does a case-insensitive substring match over emails, capped
// at 10 results.
func (s *AuthService) SearchUsers(query string) ([]model.UserBrief, error) {
	var users []model.User
	if err := s.db.Where("email LIKE ?", "%"+query+"%").
		Order("email asc").Limit(10).Find(&users).Error; err != nil {
		return nil, err
	}
	list := make([]model.UserBrief, 0, len(users))
	for _, u := range users {
		list = append(list, u.Brief())
	}
	return list, nil
}
