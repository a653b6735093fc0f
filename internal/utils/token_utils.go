package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidClaims is returned for a correctly signed token that does not name a usable actor.
var ErrInvalidClaims = errors.New("invalid token claims")

// ActorClaims is the token payload issued by the identity provider: the subject is the actor ID.
type ActorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateActorToken signs an HS256 token for actor. Used by operator tooling and tests;
// production tokens come from the identity provider.
func GenerateActorToken(actor domain.Actor, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := ActorClaims{
		Role: string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   actor.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseActorToken validates the signature and standard claims of tokenString and
// returns the actor it names. An empty issuer skips the issuer check.
func ParseActorToken(tokenString, secret, issuer string) (domain.Actor, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	claims := &ActorClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return domain.Actor{}, err // expired, signature invalid, wrong issuer...
	}
	if !token.Valid {
		return domain.Actor{}, jwt.ErrTokenSignatureInvalid
	}

	if claims.Subject == "" {
		return domain.Actor{}, fmt.Errorf("%w: subject missing", ErrInvalidClaims)
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: %v", ErrInvalidClaims, err)
	}
	return domain.Actor{ID: claims.Subject, Role: role}, nil
}
