// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/wpleonesz/kick-off-v2/internal/query"
	"github.com/wpleonesz/kick-off-v2/models"
)

// Database is the storage the services run their builders on.
type Database interface {
	query.Store

	// InTx runs fn in a transaction that commits when fn returns nil.
	InTx(ctx context.Context, fn func(tx query.Store) error) error
}

// ModuleCache is the in-process view of the module flags, kept in sync
// after administrative changes.
type ModuleCache interface {
	Set(code string, active bool)
	Refresh(ctx context.Context) error
}

type AuthService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (models.SessionUser, error)
	SignIn(ctx context.Context, req models.SignInRequest) (models.SessionUser, error)
	CreateToken(ctx context.Context, user models.SessionUser) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	CurrentUser(ctx context.Context, userID int64) (query.Record, error)
}

// RecordService exposes the CRUD operations of one entity. Mutations are
// audited on behalf of the user stored in the request context.
type RecordService interface {
	List(ctx context.Context, params models.ListParams) (any, error)
	Get(ctx context.Context, id int64) (query.Record, error)
	Create(ctx context.Context, payload models.Payload) (query.Record, error)
	Update(ctx context.Context, id int64, payload models.Payload) (query.Record, error)
	Deactivate(ctx context.Context, id int64) (query.Record, error)
	Activate(ctx context.Context, id int64) (query.Record, error)
}

// PublicService serves the read-only data shown before sign-in.
type PublicService interface {
	Courts(ctx context.Context) ([]query.Record, error)
	CourtSchedules(ctx context.Context, courtID int64) ([]query.Record, error)
	Roles(ctx context.Context) ([]query.Record, error)
}

type ModuleService interface {
	Activate(ctx context.Context, code string) error
	Deactivate(ctx context.Context, code string) error
	Seed(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
