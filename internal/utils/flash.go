// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// flashSubject tells flash tokens apart from session tokens signed with the
// same key.
const flashSubject = "flash"

type flashClaims struct {
	jwt.RegisteredClaims

	Messages []string `json:"msgs"`
}

// GenerateFlashToken signs messages as an HMAC-SHA256 JWT for the one-shot
// flash cookie.
func GenerateFlashToken(messages []string, signKey string) (string, error) {
	if signKey == "" {
		return "", errors.New("empty sign key for flash token")
	}

	claims := flashClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: flashSubject},
		Messages:         messages,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing flash token: %w", err)
	}

	return signed, nil
}

// ParseFlashToken verifies tokenString and returns the messages it carries.
func ParseFlashToken(tokenString, signKey string) ([]string, error) {
	claims := &flashClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithSubject(flashSubject),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating flash token: %w", err)
	}

	return claims.Messages, nil
}
