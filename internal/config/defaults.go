// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress        = "localhost:8080"
	DefaultDSN                = "blog.db"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultSessionIssuer      = "go-blog"
	DefaultSessionDuration    = 30 * 24 * time.Hour
	DefaultPasswordIterations = 600_000
	DefaultPasswordSaltLength = 16
	DefaultOwnerID            = 1
	DefaultLogLevel           = "info"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionIssuer:      DefaultSessionIssuer,
			SessionDuration:    DefaultSessionDuration,
			PasswordIterations: DefaultPasswordIterations,
			PasswordSaltLength: DefaultPasswordSaltLength,
			OwnerID:            DefaultOwnerID,
			LogLevel:           DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
