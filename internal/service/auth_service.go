package service

import (
	"context"
	"fmt"
	"time"

	"github.com/content-comments-api/internal/apperr"
	"github.com/content-comments-api/internal/auth"
	"github.com/content-comments-api/internal/config"
	"github.com/content-comments-api/internal/models"
	"github.com/content-comments-api/internal/repository"
	"github.com/content-comments-api/internal/validation"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// credentialClaims is the JWT payload carried by issued credentials
type credentialClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type authService struct {
	users repository.UserRepository
	cache *auth.IdentityCache
	cfg   *config.AuthConfig
	log   zerolog.Logger
}

func newAuthService(users repository.UserRepository, cache *auth.IdentityCache, cfg *config.AuthConfig, log zerolog.Logger) AuthService {
	return &authService{
		users: users,
		cache: cache,
		cfg:   cfg,
		log:   log.With().Str("component", "auth_service").Logger(),
	}
}

// Register creates a user account and issues a credential for it
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if verrs := validation.ValidateRegistration(req.Username, req.Email, req.Password); len(verrs) > 0 {
		return nil, apperr.Validation("registration failed", validation.FieldMap(verrs))
	}

	emailTaken, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Backend, "failed to check email", err)
	}
	if emailTaken {
		return nil, apperr.Validation("registration failed", map[string]string{"email": "email is already registered"})
	}

	usernameTaken, err := s.users.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, apperr.Wrap(apperr.Backend, "failed to check username", err)
	}
	if usernameTaken {
		return nil, apperr.Validation("registration failed", map[string]string{"username": "username is already taken"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.Backend, "failed to hash password", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperr.Wrap(apperr.Backend, "failed to create user", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, apperr.Wrap(apperr.Backend, "failed to issue credential", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("User registered")

	return &models.AuthResponse{Token: token, User: *user}, nil
}

// Login verifies the password and issues a fresh credential
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Backend, "failed to load user", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.Unauthenticated, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.New(apperr.Unauthenticated, "invalid credentials")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, apperr.Wrap(apperr.Backend, "failed to issue credential", err)
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

// VerifyCredential turns a bearer credential into the session
// identity. Results are cached for the configured TTL; rejected
// credentials are evicted so a revoked session cannot linger past the
// next validation.
func (s *authService) VerifyCredential(ctx context.Context, credential string) (*models.CurrentUser, error) {
	if credential == "" {
		return nil, apperr.New(apperr.Unauthenticated, "credential required")
	}

	if cached, ok := s.cache.Get(credential); ok {
		return cached, nil
	}

	claims := &credentialClaims{}
	token, err := jwt.ParseWithClaims(credential, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		s.cache.Invalidate(credential)
		return nil, apperr.New(apperr.Unauthenticated, "invalid or expired credential")
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Backend, "failed to load user", err)
	}
	if user == nil {
		s.cache.Invalidate(credential)
		return nil, apperr.New(apperr.Unauthenticated, "account no longer exists")
	}

	identity := models.CurrentUser{ID: user.ID, Username: user.Username, Email: user.Email}
	s.cache.Put(credential, identity)

	return &identity, nil
}

// Logout drops the cached identity for the credential
func (s *authService) Logout(ctx context.Context, credential string) {
	s.cache.Invalidate(credential)
}

func (s *authService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := credentialClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
