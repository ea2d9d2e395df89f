package services

import (
	"context"
	"errors"
	"fmt"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingEmailClaim = errors.New("token carries no email claim")

// Identity is what the auth middleware attaches to a request.
type Identity struct {
	UID    string                 `json:"uid"`
	Email  string                 `json:"email"`
	Claims map[string]interface{} `json:"claims,omitempty"`
}

// FirebaseVerifier checks Firebase ID tokens against Google's public keys.
type FirebaseVerifier struct {
	client *auth.Client
}

func NewFirebaseVerifier(client *auth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("verify firebase id token: %w", err)
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		return nil, ErrMissingEmailClaim
	}

	return &Identity{UID: token.UID, Email: email, Claims: token.Claims}, nil
}

// JWTVerifier accepts HS256 tokens signed with a shared secret. It stands in
// for Firebase in local development and tests.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (*Identity, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("verify jwt: %w", err)
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, ErrMissingEmailClaim
	}
	sub, _ := claims["sub"].(string)

	return &Identity{UID: sub, Email: email, Claims: claims}, nil
}
