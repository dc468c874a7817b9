package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/omgcarlo/RetailSavvy/internal/dto"
	"github.com/omgcarlo/RetailSavvy/internal/model"
	"github.com/omgcarlo/RetailSavvy/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService interface {
	Register(ctx context.Context, req dto.CredentialsRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.CredentialsRequest) (*dto.AuthResponse, error)
	GetUser(ctx context.Context, id int) (*model.User, error)
}

type authService struct {
	repo       repository.UserRepository
	secret     string
	expiration time.Duration
}

func NewAuthService(repo repository.UserRepository, secret string, expiration time.Duration) AuthService {
	return &authService{repo: repo, secret: secret, expiration: expiration}
}

func (s *authService) Register(ctx context.Context, req dto.CredentialsRequest) (*dto.AuthResponse, error) {
	if _, err := s.repo.FindByUsername(ctx, req.Username); err == nil {
		return nil, errors.New("username already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, storeErr(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &model.User{Username: req.Username, Password: string(hash)}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, storeErr(err)
	}
	return s.respondWithToken(u)
}

func (s *authService) Login(ctx context.Context, req dto.CredentialsRequest) (*dto.AuthResponse, error) {
	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, storeErr(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.respondWithToken(u)
}

func (s *authService) GetUser(ctx context.Context, id int) (*model.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, storeErr(err)
	}
	return u, nil
}

func (s *authService) respondWithToken(u *model.User) (*dto.AuthResponse, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(u.ID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{ID: u.ID, Username: u.Username, Token: token}, nil
}
