// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/pkms-go/diary-keeper/internal/config"
	"github.com/pkms-go/diary-keeper/internal/crypto"
	"github.com/pkms-go/diary-keeper/internal/logger"
	"github.com/pkms-go/diary-keeper/internal/store"
	"github.com/pkms-go/diary-keeper/internal/utils"
	"github.com/pkms-go/diary-keeper/models"
)

type Services struct {
	AuthService         AuthService
	EncryptionService   EncryptionService
	DiaryContentService DiaryContentService
	DiaryService        DiaryService
	AppInfoService      AppInfoService
}

// NewServices wires every service on top of the repositories and the
// process-wide session store.
func NewServices(
	repos *store.Repositories,
	sessions SessionManager,
	hasher crypto.PasswordHasher,
	build models.AppBuildInfo,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(build, logger)
	if err != nil {
		return nil, err
	}

	layout := NewLayout(cfg.Storage.Files.DataDir)
	content := NewDiaryContentService(sessions, crypto.NewCipher(), layout.TempDir(), logger)
	diary := NewDiaryService(repos.DiaryEntryRepository, repos.DiaryMediaRepository, content, sessions, layout, utils.NewUUIDGenerator(), logger)

	return &Services{
		AuthService:         NewAuthService(cfg.App, logger),
		EncryptionService:   NewEncryptionService(repos.DiaryPasswordRepository, sessions, hasher, logger),
		DiaryContentService: content,
		DiaryService:        NewDiaryValidationService().Wrap(diary),
		AppInfoService:      appInfo,
	}, nil
}
