package auth

import (
	"log/slog"
	"time"

	"agency/config"
	"agency/internal/domain/constants"
	"agency/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// insecureDevSecret signs tokens when no secret is configured outside production.
const insecureDevSecret = "supersecretkeychange"

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret     []byte
	defaultTTL time.Duration
	now        func() time.Time
}

// JWTServiceParams holds dependencies for the token service, injected by Fx.
type JWTServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewJWTService reads the signing secret once at startup. An empty secret is
// fatal in production and replaced by a well-known development key elsewhere.
func NewJWTService(params JWTServiceParams) (service.TokenService, error) {
	cfg := params.Config

	secret := cfg.SecretKey.Access
	if secret == "" {
		if cfg.Env.Env == constants.EnvProduction {
			return nil, errors.New("jwt secret must be provided in production")
		}
		params.Logger.Warn("No signing secret configured, falling back to an insecure development key",
			slog.String("env", cfg.Env.Env),
		)
		secret = insecureDevSecret
	}

	ttl := 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return newJWTService(secret, ttl), nil
}

func newJWTService(secret string, ttl time.Duration) *jwtService {
	return &jwtService{
		secret:     []byte(secret),
		defaultTTL: ttl,
		now:        time.Now,
	}
}

// IssueToken creates a signed access token whose subject is the user's email.
func (s *jwtService) IssueToken(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken verifies signature, algorithm and expiry before trusting any claim.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	var claims jwt.RegisteredClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims,
		func(token *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, errors.Wrap(service.ErrInvalidToken, errMessage(err))
	}

	if claims.Subject == "" {
		return nil, errors.WithStack(service.ErrMissingSubject)
	}

	result := &service.Claims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}

// DefaultTTL returns the configured duration for access tokens.
func (s *jwtService) DefaultTTL() time.Duration {
	return s.defaultTTL
}

func errMessage(err error) string {
	if err == nil {
		return "token not valid"
	}

	return err.Error()
}
