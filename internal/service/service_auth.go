// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wpleonesz/kick-off-v2/internal/config"
	"github.com/wpleonesz/kick-off-v2/internal/entities"
	"github.com/wpleonesz/kick-off-v2/internal/logger"
	"github.com/wpleonesz/kick-off-v2/internal/query"
	"github.com/wpleonesz/kick-off-v2/internal/utils"
	"github.com/wpleonesz/kick-off-v2/internal/validators"
	"github.com/wpleonesz/kick-off-v2/models"
)

// authService is the concrete implementation of AuthService.
// It creates accounts, verifies credentials with bcrypt and manages the JWT
// token lifecycle. Accounts are read and written through query builders
// over the users, persons and roles_on_users entities.
type authService struct {
	db        Database
	opts      []query.Option
	validator validators.Validator

	// pepper is mixed into every password before hashing. Changing it
	// invalidates every stored password.
	pepper string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService over db, populated with
// security parameters from cfg. opts are passed to every query builder.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(db Database, cfg config.App, logger *logger.Logger, opts ...query.Option) AuthService {
	return &authService{
		db:            db,
		opts:          opts,
		validator:     validators.NewAuthValidator(),
		pepper:        cfg.PasswordPepper,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// SignUp creates the person, the user account attached to it and the link
// to the requested role in a single transaction.
//
// Names are stored upper-cased and the username and email lower-cased.
// Returns the created account or:
//   - ErrInvalidDataProvided wrapping the validation failure.
//   - A wrapped storage error, e.g. store.ErrConstraintViolation when the
//     username or dni is already taken.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.SessionUser, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "authService.SignUp").Str("username", req.Username).Msg("invalid sign-up data")
		return models.SessionUser{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	req = normalizeSignUp(req)
	hash, err := utils.HashPassword(req.Password, a.pepper)
	if err != nil {
		log.Err(err).Str("func", "authService.SignUp").Msg("password hashing failed")
		return models.SessionUser{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var created models.SessionUser
	err = a.db.InTx(ctx, func(tx query.Store) error {
		person, err := entities.NewPersonData(tx, a.opts...).
			Project(query.Columns("id", "name")).
			Insert(ctx, req.PersonRecord())
		if err != nil {
			return err
		}

		user, err := entities.NewUserData(tx, a.opts...).
			Project(query.Columns("id", "username", "email")).
			Insert(ctx, query.Record{
				"username":  req.Username,
				"password":  hash,
				"email":     req.Email,
				"person_id": person.ID(),
				"active":    true,
			})
		if err != nil {
			return err
		}

		if req.RoleID > 0 {
			_, err = entities.NewRolesOnUsersData(tx, a.opts...).
				SetAuditable(true).
				SetAuditedUser(query.AuditedUser{ID: user.ID(), Username: req.Username}).
				Insert(ctx, query.Record{"user_id": user.ID(), "role_id": req.RoleID, "active": true})
			if err != nil {
				return err
			}
		}

		created = models.SessionUser{
			ID:       user.ID(),
			Username: asString(user["username"]),
			Email:    asString(user["email"]),
			Name:     asString(person["name"]),
			DNI:      req.DNI,
			Roles:    []models.SessionRole{},
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "authService.SignUp").Str("username", req.Username).Msg("user creation ended with error")
		return models.SessionUser{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "authService.SignUp").Int64("user_id", created.ID).Msg("user created")
	return created, nil
}

// SignIn authenticates a user by username and password.
//
// The account is read through the CREDENTIALS projection, the only one that
// exposes the password hash. Unknown usernames and wrong passwords both
// yield ErrWrongPassword; deactivated accounts yield ErrUserIsInactive.
func (a *authService) SignIn(ctx context.Context, req models.SignInRequest) (models.SessionUser, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.SessionUser{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	rec, err := entities.NewUserData(a.db, a.opts...).
		ProjectSchema(query.ProjectionCredentials).
		Filter(query.Filter{"username": username}).
		Unique(ctx)
	if err != nil {
		log.Err(err).Str("func", "authService.SignIn").Str("username", username).Msg("user search by username failed")
		return models.SessionUser{}, fmt.Errorf("user search by username failed: %w", err)
	}
	if rec == nil {
		log.Debug().Str("func", "authService.SignIn").Str("username", username).Msg("no such user")
		return models.SessionUser{}, ErrWrongPassword
	}

	err = utils.ComparePassword(asString(rec["password"]), req.Password, a.pepper)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		log.Debug().Str("func", "authService.SignIn").Int64("user_id", rec.ID()).Msg("wrong password")
		return models.SessionUser{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("func", "authService.SignIn").Int64("user_id", rec.ID()).Msg("stored password hash is unusable")
		return models.SessionUser{}, ErrWrongPassword
	}

	if !asBool(rec["active"]) {
		return models.SessionUser{}, ErrUserIsInactive
	}

	return sessionUser(rec), nil
}

// CurrentUser returns the DEFAULT view of the user, or ErrRecordNotFound.
func (a *authService) CurrentUser(ctx context.Context, userID int64) (query.Record, error) {
	if userID <= 0 {
		return nil, ErrInvalidRecordID
	}

	rec, err := entities.NewUserData(a.db, a.opts...).ByID(userID).First(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.CurrentUser").Int64("user_id", userID).Msg("user search failed")
		return nil, fmt.Errorf("user search failed: %w", err)
	}
	if rec == nil {
		return nil, ErrRecordNotFound
	}
	return rec, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.SessionUser) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.CreateToken").Int64("user_id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func normalizeSignUp(req models.SignUpRequest) models.SignUpRequest {
	req.FirstName = strings.ToUpper(strings.TrimSpace(req.FirstName))
	req.LastName = strings.ToUpper(strings.TrimSpace(req.LastName))
	req.Name = req.FirstName + " " + req.LastName
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	req.DNI = strings.TrimSpace(req.DNI)
	return req
}

// sessionUser maps a CREDENTIALS record to the public user view. Only
// active role links are kept.
func sessionUser(rec query.Record) models.SessionUser {
	user := models.SessionUser{
		ID:       rec.ID(),
		Username: asString(rec["username"]),
		Email:    asString(rec["email"]),
		Roles:    []models.SessionRole{},
	}

	if person, ok := rec["Person"].(query.Record); ok {
		user.Name = asString(person["name"])
		user.DNI = asString(person["dni"])
	}
	if user.Name == "" {
		user.Name = user.Username
	}

	links, _ := rec["roles"].([]query.Record)
	for _, link := range links {
		role, ok := link["Role"].(query.Record)
		if !ok || !asBool(link["active"]) {
			continue
		}
		user.Roles = append(user.Roles, models.SessionRole{
			ID:   role.ID(),
			Code: asString(role["code"]),
			Name: asString(role["name"]),
		})
	}
	return user
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return ""
	}
}

func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case int64:
		return b != 0
	default:
		return false
	}
}
