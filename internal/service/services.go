// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type Services struct {
	AuthService    AuthService
	PostService    PostService
	CommentService CommentService
	AvatarService  AvatarService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewFormValidator()

	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.SessionRepository, validator, cfg.App, logger),
		PostService:    NewPostValidationService(validator).Wrap(NewPostService(storages.PostRepository, logger)),
		CommentService: NewCommentService(storages.CommentRepository, validator, logger),
		AvatarService:  NewAvatarService(),
		AppInfoService: appInfoService,
	}, nil
}
