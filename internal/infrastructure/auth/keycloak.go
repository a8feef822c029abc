package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// Principal is the caller identity extracted from a validated token.
type Principal struct {
	Subject           string
	Issuer            string
	PreferredUsername string
	Email             string
	Roles             []string
	ExpiresAt         time.Time
}

const (
	jwksInitialRetryInterval   = time.Second
	jwksInitialRetryMaxBackoff = 10 * time.Second
	jwksInitialRetryTimeout    = 2 * time.Minute
)

// KeycloakValidator validates RS256 bearer tokens against a JWKS endpoint.
type KeycloakValidator struct {
	issuer   string
	audience string
	jwksURL  string
	leeway   time.Duration
	log      zerolog.Logger
	jwks     atomic.Pointer[keyfunc.JWKS]
	ready    atomic.Bool
}

// NewKeycloakValidator fetches the key set, retrying with backoff until the
// first fetch succeeds or the retry window closes.
func NewKeycloakValidator(
	ctx context.Context,
	jwksURL, issuer, audience string,
	refreshEvery, leeway time.Duration,
	log zerolog.Logger,
) (*KeycloakValidator, error) {
	if jwksURL == "" {
		return nil, errors.New("jwks url is required")
	}

	v := &KeycloakValidator{
		issuer:   issuer,
		audience: audience,
		jwksURL:  jwksURL,
		leeway:   leeway,
		log:      log.With().Str("component", "jwks").Logger(),
	}

	options := keyfunc.Options{
		Ctx:               ctx,
		RefreshInterval:   refreshEvery,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			if v.ready.Swap(false) {
				v.log.Error().Err(err).Msg("jwks refresh failed, marking not ready")
				return
			}
			v.log.Error().Err(err).Msg("jwks refresh failed")
		},
		ResponseExtractor: v.extractKeySet,
	}

	backoff := jwksInitialRetryInterval
	deadline := time.Now().Add(jwksInitialRetryTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	for attempt := 1; ; attempt++ {
		jwks, err := keyfunc.Get(jwksURL, options)
		if err == nil {
			v.jwks.Store(jwks)
			v.ready.Store(true)
			return v, nil
		}

		v.log.Warn().Err(err).Str("jwks_url", jwksURL).Int("attempt", attempt).Msg("initial jwks fetch failed, retrying")

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("fetch jwks: %w", ctx.Err())
		case <-time.After(backoff):
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("fetch jwks: %w", err)
		}
		backoff = min(backoff*2, jwksInitialRetryMaxBackoff)
	}
}

// Validate parses rawToken and checks issuer, audience and expiry.
func (v *KeycloakValidator) Validate(_ context.Context, rawToken string) (*Principal, error) {
	jwks := v.jwks.Load()
	if jwks == nil {
		return nil, errors.New("jwks not initialised")
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(v.issuer),
		jwt.WithLeeway(v.leeway),
		jwt.WithExpirationRequired(),
	}
	if v.audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(v.audience))
	}

	claims := jwt.MapClaims{}
	token, err := jwt.NewParser(parserOpts...).ParseWithClaims(rawToken, claims, jwks.Keyfunc)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return principalFromClaims(claims)
}

// extractKeySet marks the validator ready whenever the JWKS endpoint answers
// 200. A key set that then fails to parse goes through RefreshErrorHandler,
// which clears the flag again.
func (v *KeycloakValidator) extractKeySet(ctx context.Context, resp *http.Response) (json.RawMessage, error) {
	raw, err := keyfunc.ResponseExtractorStatusOK(ctx, resp)
	if err != nil {
		return nil, err
	}
	if !v.ready.Swap(true) && v.jwks.Load() != nil {
		v.log.Info().Msg("jwks refresh recovered")
	}
	return raw, nil
}

// Ready reports whether the key set is loaded and the last refresh succeeded.
func (v *KeycloakValidator) Ready() bool {
	return v.jwks.Load() != nil && v.ready.Load()
}

func principalFromClaims(claims jwt.MapClaims) (*Principal, error) {
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, errors.New("sub claim missing")
	}
	iss, _ := claims.GetIssuer()

	p := &Principal{Subject: sub, Issuer: iss}
	p.PreferredUsername, _ = claims["preferred_username"].(string)
	p.Email, _ = claims["email"].(string)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		p.ExpiresAt = exp.UTC()
	}
	if realmAccess, ok := claims["realm_access"].(map[string]any); ok {
		if roles, ok := realmAccess["roles"].([]any); ok {
			for _, role := range roles {
				if s, ok := role.(string); ok {
					p.Roles = append(p.Roles, s)
				}
			}
		}
	}
	return p, nil
}
