package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ashish-Kumar16/TaskGroove/internal/model"
	"github.com/Ashish-Kumar16/TaskGroove/internal/store"
	jwtpkg "github.com/Ashish-Kumar16/TaskGroove/pkg/jwt"
)

// ErrInvalidCredentials is returned by Login for an unknown email or a
// wrong password; callers must not reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	users     store.Users
	jwtSecret string
	jwtExpire int
}

func NewAuthService(users store.Users, jwtSecret string, jwtExpire int) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret, jwtExpire: jwtExpire}
}

// Register creates a user account and issues a token for it.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, string, time.Time, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     model.DefaultRole,
		Avatar:   PlaceholderAvatar(name),
		Projects: []primitive.ObjectID{},
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, expireAt, err := jwtpkg.GenerateToken(s.jwtSecret, user.ID.Hex(), s.jwtExpire)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expireAt, nil
}

// Login verifies the credentials and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expireAt, err := jwtpkg.GenerateToken(s.jwtSecret, user.ID.Hex(), s.jwtExpire)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expireAt, nil
}

// PlaceholderAvatar builds the generated-initials avatar URL used for
// accounts that never uploaded a picture.
func PlaceholderAvatar(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}
