package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	actorKey     = "actor"
	bearerPrefix = "Bearer "
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the token payload issued by the identity provider.
type Claims struct {
	jwt.RegisteredClaims
	Role       string `json:"role"`
	EntityType string `json:"entity_type,omitempty"`
	EntityID   string `json:"entity_id,omitempty"`
}

// TokenVerifier checks HS256 access tokens. Issuance happens elsewhere.
type TokenVerifier struct {
	secret []byte
	issuer string
}

func NewTokenVerifier(secret, issuer string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret), issuer: issuer}
}

// Verify parses the token and turns its claims into an actor.
func (v *TokenVerifier) Verify(token string) (identity.Actor, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		options = append(options, jwt.WithIssuer(v.issuer))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, options...)
	if err != nil {
		return identity.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	actor, err := claims.actor()
	if err != nil {
		return identity.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return actor, nil
}

func (c *Claims) actor() (identity.Actor, error) {
	id, err := kernel.UUIDFromString(c.Subject)
	if err != nil {
		return identity.Actor{}, err
	}
	role, err := identity.ParseRole(c.Role)
	if err != nil {
		return identity.Actor{}, err
	}

	var entity kernel.EntityRef
	if c.EntityType != "" {
		kind, kindErr := kernel.ParseEntityKind(c.EntityType)
		if kindErr != nil {
			return identity.Actor{}, kindErr
		}
		entityID, idErr := kernel.UUIDFromString(c.EntityID)
		if idErr != nil {
			return identity.Actor{}, idErr
		}
		if entity, err = kernel.NewEntityRef(kind, entityID); err != nil {
			return identity.Actor{}, err
		}
	}

	return identity.NewActor(id, role, entity)
}

// authenticate resolves the actor from the Authorization header.
func authenticate(verifier *TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, bearerPrefix)
			if !found || strings.TrimSpace(token) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, ErrMissingToken.Error()).SetInternal(ErrMissingToken)
			}

			actor, err := verifier.Verify(strings.TrimSpace(token))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, ErrInvalidToken.Error()).SetInternal(err)
			}

			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

func actorFrom(c echo.Context) (identity.Actor, error) {
	actor, ok := c.Get(actorKey).(identity.Actor)
	if !ok {
		return identity.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, ErrMissingToken.Error())
	}
	return actor, nil
}
