// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// idGenerator produces session identifiers.
type idGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// Accounts live in a UserRepository, logins are tracked as rows of a
// SessionRepository and referenced from the client by a signed JWT.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository
	validator         validators.Validator
	ids               idGenerator

	// signKey is the HMAC secret used to sign and verify session tokens.
	signKey string

	// issuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	issuer string

	sessionDuration    time.Duration
	passwordIterations int
	passwordSaltLength int
	ownerID            int64

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	sessionRepository store.SessionRepository,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:     userRepository,
		sessionRepository:  sessionRepository,
		validator:          validator,
		ids:                utils.NewUUIDGenerator(),
		signKey:            cfg.SessionSignKey,
		issuer:             cfg.SessionIssuer,
		sessionDuration:    cfg.SessionDuration,
		passwordIterations: cfg.PasswordIterations,
		passwordSaltLength: cfg.PasswordSaltLength,
		ownerID:            cfg.OwnerID,
		now:                time.Now,
		logger:             logger,
	}
}

// RegisterUser creates a new user account.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - *validators.ValidationError if any field is invalid.
//   - a wrapped store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) RegisterUser(ctx context.Context, form models.RegisterForm) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, form); err != nil {
		log.Debug().Err(err).Str("email", form.Email).Msg("invalid registration form")
		return models.User{}, err
	}

	hash, err := utils.HashPassword(form.Password, a.passwordIterations, a.passwordSaltLength)
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         form.Name,
		Email:        form.Email,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("email", form.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns the stored user or:
//   - *validators.ValidationError if the form is incomplete.
//   - ErrNoSuchAccount if no user has that email.
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, form models.LoginForm) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, form); err != nil {
		log.Debug().Err(err).Msg("invalid login form")
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, form.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("email", form.Email).Msg("login attempt for unknown email")
		return models.User{}, ErrNoSuchAccount
	}
	if err != nil {
		log.Err(err).Str("email", form.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPasswordHash(foundUser.PasswordHash, form.Password) {
		log.Info().Int64("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateSession stores a new session row for user and signs a token
// referencing it. The token is returned in Session.Token.
func (a *authService) CreateSession(ctx context.Context, user models.User) (models.Session, error) {
	log := logger.FromContext(ctx)

	if !user.IsAuthenticated() {
		return models.Session{}, fmt.Errorf("%w: anonymous user", ErrSessionCreationFailed)
	}

	now := a.now().UTC()
	session := models.Session{
		ID:        a.ids.Generate(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionDuration),
	}

	token, err := utils.GenerateSessionToken(a.issuer, session, a.signKey)
	if err != nil {
		log.Err(err).Str("func", "authService.CreateSession").Msg("token signing failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	if err = a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("session persisting failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	session.Token = token.String()
	return session, nil
}

// CurrentUser resolves token to a user. Every failure is logged at debug
// level and yields the anonymous user.
func (a *authService) CurrentUser(ctx context.Context, token string) models.User {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.User{}
	}

	claims, err := utils.ValidateAndParseSessionToken(token, a.signKey, a.issuer)
	if err != nil {
		log.Debug().Err(err).Msg("session token rejected")
		return models.User{}
	}
	userID, err := claims.GetUserID()
	if err != nil {
		log.Debug().Err(err).Msg("session token without user")
		return models.User{}
	}

	session, err := a.sessionRepository.GetSession(ctx, claims.SessionID())
	if err != nil {
		log.Debug().Err(err).Str("session_id", claims.SessionID()).Msg("session lookup failed")
		return models.User{}
	}
	if session.UserID != userID {
		log.Warn().Str("session_id", session.ID).Int64("token_user_id", userID).Msg("session user mismatch")
		return models.User{}
	}
	if session.Expired(a.now()) {
		log.Debug().Str("session_id", session.ID).Msg("session expired")
		return models.User{}
	}

	user, err := a.userRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		log.Debug().Err(err).Int64("user_id", session.UserID).Msg("session user lookup failed")
		return models.User{}
	}

	return user
}

// Logout deletes the session named by token. Tokens that do not verify are
// ignored, so calling Logout twice is harmless.
func (a *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := utils.ValidateAndParseSessionToken(token, a.signKey, a.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("logout with invalid token")
		return nil
	}

	if err = a.sessionRepository.DeleteSession(ctx, claims.SessionID()); err != nil {
		return fmt.Errorf("session deletion failed: %w", err)
	}

	return nil
}

func (a *authService) AuthorizeOwner(ctx context.Context, user models.User) error {
	if !user.IsAuthenticated() {
		return ErrUnauthorized
	}
	if user.ID != a.ownerID {
		logger.FromContext(ctx).Info().Int64("user_id", user.ID).Msg("non-owner tried an owner action")
		return ErrForbidden
	}

	return nil
}

func (a *authService) Owner(ctx context.Context) (models.User, error) {
	owner, err := a.userRepository.FindUserByID(ctx, a.ownerID)
	if err != nil {
		return models.User{}, fmt.Errorf("owner lookup failed: %w", err)
	}

	return owner, nil
}
