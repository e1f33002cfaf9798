package userapp

import (
	"context"
	"errors"
	"time"

	userEntity "dhvanicast/internal/core/user"
	userPort "dhvanicast/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService سرویس مدیریت کاربران
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
	}
}

// LoginUser ورود کاربر و صدور توکن JWT
func (s *UserService) LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	user, err := s.UserRepository.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, errors.New("could not generate token")
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
	}, nil
}

// generateJWT برای تولید توکن JWT
func (s *UserService) generateJWT(user *userEntity.User) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   user.ID.String(),
		Issuer:    "dhvanicast",
		ExpiresAt: time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

// RegisterUser ثبت‌نام کاربر جدید
func (s *UserService) RegisterUser(ctx context.Context, name, username, mobile, password, city string) (*userPort.UserDTO, error) {
	existingUser, err := s.UserRepository.FindByUsernameOrMobile(username, mobile)
	if err == nil && existingUser != nil {
		return nil, errors.New("username or mobile already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &userEntity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Name:     name,
		Username: username,
		Mobile:   mobile,
		Password: string(hashedPassword),
		City:     city,
		Tier:     userEntity.TierFree,
	}

	u, err := s.UserRepository.Create(user)
	if err != nil {
		return nil, err
	}

	return userPort.ToDTO(u), nil
}

// GetUser بازیابی کاربر با شناسه
func (s *UserService) GetUser(ctx context.Context, id string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByID(id)
	if err != nil {
		return nil, err
	}
	return userPort.ToDTO(u), nil
}

// IsAdExempt reports whether the viewer's subscription tier skips ads.
// Unknown viewers are never exempt.
func (s *UserService) IsAdExempt(ctx context.Context, userID string) bool {
	u, err := s.UserRepository.FindByID(userID)
	if err != nil {
		return false
	}
	return u.AdExempt()
}
