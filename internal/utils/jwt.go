// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-blog/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT referencing a
// server-side session.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - ID        (jti): the session ID
//   - IssuedAt  (iat): the issue time
//   - ExpiresAt (exp): expiresAt
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("go-blog", session, "secret")
func GenerateSessionToken(issuer string, session models.Session, signKey string) (models.SessionToken, error) {
	if issuer == "" || signKey == "" || session.ID == "" || session.UserID == 0 || session.ExpiresAt.IsZero() {
		return models.SessionToken{}, errors.New("invalid params for generating session token")
	}

	issuedAt := session.CreatedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}

	claims := models.SessionToken{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(session.UserID, 10),
			ID:        session.ID,
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims.RegisteredClaims).SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}
	claims.SignedString = signed

	return claims, nil
}

// ValidateAndParseSessionToken verifies the signature, algorithm, issuer and
// expiry of tokenString and returns its claims.
//
// Both the subject and the session ID must be present; the subject must be a
// positive integer.
func ValidateAndParseSessionToken(tokenString, signKey, issuer string) (models.SessionToken, error) {
	claims := &models.SessionToken{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.SessionToken{}, err
	}
	if userID <= 0 {
		return models.SessionToken{}, errors.New("non-positive subject in session token")
	}
	if claims.SessionID() == "" {
		return models.SessionToken{}, errors.New("empty session id in session token")
	}

	claims.SignedString = tokenString
	return *claims, nil
}
