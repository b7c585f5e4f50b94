// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

const minPasswordIterations = 1000

// validate checks that the final merged [StructuredConfig] can be used at
// startup.
func (cfg *StructuredConfig) validate() error {
	switch {
	case cfg.App.SessionSignKey == "":
		return fmt.Errorf("%w: session sign key is empty", ErrInvalidAppConfigs)
	case cfg.App.SessionIssuer == "" || cfg.App.SessionDuration <= 0:
		return fmt.Errorf("%w: session issuer and duration are required", ErrInvalidAppConfigs)
	case cfg.App.PasswordIterations < minPasswordIterations:
		return fmt.Errorf("%w: password iterations must be at least %d", ErrInvalidAppConfigs, minPasswordIterations)
	case cfg.App.PasswordSaltLength < 1:
		return fmt.Errorf("%w: password salt length must be positive", ErrInvalidAppConfigs)
	case cfg.App.OwnerID < 1:
		return fmt.Errorf("%w: owner id must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
