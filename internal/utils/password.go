// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	passwordMethod = "pbkdf2"
	saltChars      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// defaultHashIterations is assumed when a stored hash omits the work factor.
	defaultHashIterations = 600_000
)

var (
	ErrMalformedPasswordHash = errors.New("malformed password hash")
	ErrUnsupportedHashDigest = errors.New("unsupported password hash digest")
)

var digests = map[string]func() hash.Hash{
	"sha1":   sha1.New,
	"sha256": sha256.New,
	"sha512": sha512.New,
}

// HashPassword derives a salted PBKDF2-HMAC-SHA256 hash of password and
// encodes it as "pbkdf2:sha256:<iterations>$<salt>$<hex digest>".
//
// The format is the one produced by werkzeug's generate_password_hash, so
// account tables created by other tooling keep verifying.
func HashPassword(password string, iterations, saltLength int) (string, error) {
	if iterations < 1 || saltLength < 1 {
		return "", errors.New("invalid params for hashing password")
	}

	salt, err := randomSalt(saltLength)
	if err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, sha256.Size, sha256.New)

	return fmt.Sprintf("%s:sha256:%d$%s$%s", passwordMethod, iterations, salt, hex.EncodeToString(key)), nil
}

// CheckPasswordHash reports whether password matches the encoded hash.
// The digest comparison is constant-time. A malformed hash never matches.
func CheckPasswordHash(encoded, password string) bool {
	digest, iterations, salt, want, err := parsePasswordHash(encoded)
	if err != nil {
		return false
	}

	newHash := digests[digest]
	got := pbkdf2.Key([]byte(password), []byte(salt), iterations, newHash().Size(), newHash)

	return subtle.ConstantTimeCompare(got, want) == 1
}

func parsePasswordHash(encoded string) (digest string, iterations int, salt string, sum []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[1] == "" {
		return "", 0, "", nil, ErrMalformedPasswordHash
	}

	method := strings.Split(parts[0], ":")
	if len(method) < 2 || len(method) > 3 || method[0] != passwordMethod {
		return "", 0, "", nil, ErrMalformedPasswordHash
	}

	digest = method[1]
	if _, ok := digests[digest]; !ok {
		return "", 0, "", nil, ErrUnsupportedHashDigest
	}

	iterations = defaultHashIterations
	if len(method) == 3 {
		iterations, err = strconv.Atoi(method[2])
		if err != nil || iterations < 1 {
			return "", 0, "", nil, ErrMalformedPasswordHash
		}
	}

	sum, err = hex.DecodeString(parts[2])
	if err != nil || len(sum) == 0 {
		return "", 0, "", nil, ErrMalformedPasswordHash
	}

	return digest, iterations, parts[1], sum, nil
}

func randomSalt(length int) (string, error) {
	limit := big.NewInt(int64(len(saltChars)))

	var sb strings.Builder
	sb.Grow(length)
	for range length {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		sb.WriteByte(saltChars[n.Int64()])
	}

	return sb.String(), nil
}
