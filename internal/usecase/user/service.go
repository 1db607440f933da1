package user

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/newsflow-app/newsflow-api/domain"
)

type service struct {
	userRepo  domain.UserRepository
	jwtSecret []byte
	jwtTTL    time.Duration
}

var _ domain.UserUsecase = (*service)(nil)

// NewService will create a new user service object
func NewService(userRepo domain.UserRepository, jwtSecret []byte, jwtTTL time.Duration) *service {
	return &service{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}
}

func (s *service) Register(ctx context.Context, name, email, password string) (string, domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || len(password) < 6 {
		return "", domain.User{}, domain.ErrBadParamInput
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", domain.User{}, err
	}

	u := domain.User{
		Name:                name,
		Email:               email,
		Password:            string(hashed),
		Role:                domain.RoleUser,
		PreferredCategories: []string{},
		Country:             domain.DefaultNewsCountry,
	}
	if err := s.userRepo.Insert(ctx, &u); err != nil {
		return "", domain.User{}, err
	}

	token, err := s.signToken(u)
	if err != nil {
		return "", domain.User{}, err
	}
	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", domain.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", domain.User{}, domain.ErrBadParamInput
	}

	token, err := s.signToken(u)
	if err != nil {
		return "", domain.User{}, err
	}
	return token, u, nil
}

func (s *service) Me(ctx context.Context, id int64) (domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *service) UpdatePreferences(ctx context.Context, id int64, categories []string, country string) (domain.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if categories == nil {
		categories = []string{}
	}
	u.PreferredCategories = categories
	if country != "" {
		u.Country = country
	}
	u.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, &u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (s *service) signToken(u domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   u.ID,
		"user_name": u.Name,
		"user_role": u.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(s.jwtTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
