package auth

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"jan-server/services/meet-api/internal/config"
	"jan-server/services/meet-api/internal/utils/platformerrors"
)

const (
	// UserIDKey is the gin context key holding the caller's subject.
	UserIDKey = "user_id"
	// PrincipalKey is the gin context key holding the *Principal.
	PrincipalKey = "principal"
)

type tokenValidator interface {
	Validate(ctx context.Context, rawToken string) (*Principal, error)
}

// Validator guards the API when AUTH_ENABLED is set. With auth disabled its
// middleware passes every request through.
type Validator struct {
	enabled  bool
	log      zerolog.Logger
	tokens   tokenValidator
	keycloak *KeycloakValidator
}

// NewValidator fetches the JWKS when auth is enabled.
func NewValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Validator, error) {
	log = log.With().Str("component", "auth").Logger()
	if !cfg.AuthEnabled {
		log.Info().Msg("authentication disabled")
		return &Validator{log: log}, nil
	}

	keycloak, err := NewKeycloakValidator(ctx, cfg.AuthJWKSURL, cfg.AuthIssuer, cfg.AuthAudience, 5*time.Minute, time.Minute, log)
	if err != nil {
		return nil, err
	}

	return &Validator{enabled: true, log: log, tokens: keycloak, keycloak: keycloak}, nil
}

// Ready reports whether the validator can accept tokens.
func (v *Validator) Ready() bool {
	if v == nil || !v.enabled {
		return true
	}
	if v.keycloak == nil {
		return v.tokens != nil
	}
	return v.keycloak.Ready()
}

// Middleware accepts gateway-injected identity headers or a bearer JWT.
func (v *Validator) Middleware() gin.HandlerFunc {
	if v == nil || !v.enabled {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if userID := gatewayUserID(c); userID != "" {
			c.Set(UserIDKey, userID)
			c.Next()
			return
		}

		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			platformerrors.WriteUnauthorized(c, "missing bearer token")
			c.Abort()
			return
		}

		principal, err := v.tokens.Validate(c.Request.Context(), raw)
		if err != nil {
			v.log.Debug().Err(err).Msg("jwt validation failed")
			platformerrors.WriteUnauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(UserIDKey, principal.Subject)
		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// gatewayUserID returns the identity an API gateway injected after it
// validated an API key itself.
func gatewayUserID(c *gin.Context) string {
	if userID := strings.TrimSpace(c.GetHeader("X-User-ID")); userID != "" {
		return userID
	}
	if strings.TrimSpace(c.GetHeader("X-Credential-Identifier")) != "" {
		if customID := strings.TrimSpace(c.GetHeader("X-Consumer-Custom-ID")); customID != "" {
			return customID
		}
	}
	return ""
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
