package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/clinic-server/internal/logger"
	"github.com/dtroode/clinic-server/internal/model"
)

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates a patient or doctor account. An empty role means patient.
func (a *Auth) Register(ctx context.Context, input model.RegisterInput) (model.User, error) {
	if input.Role == "" {
		input.Role = model.RolePatient
	}
	if input.Role != model.RolePatient && input.Role != model.RoleDoctor {
		return model.User{}, model.NewValidationError("role", "must be patient or doctor")
	}

	input.Email = normalizeEmail(input.Email)
	if err := validateRegisterInput(input); err != nil {
		return model.User{}, err
	}

	a.logger.Debug("Auth service: starting user registration",
		"email", input.Email,
		"role", input.Role)

	_, err := a.userStore.GetByEmail(ctx, input.Email)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"email", input.Email)
		return model.User{}, fmt.Errorf("email %s: %w", input.Email, model.ErrAlreadyExists)
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", input.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(input.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Phone:        input.Phone,
		Role:         input.Role,
		Bio:          input.Bio,
		SpecialtyID:  input.SpecialtyID,
	})
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", input.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", user.ID,
		"role", user.Role)

	return user, nil
}

// Login checks credentials and issues a token pair.
func (a *Auth) Login(ctx context.Context, email, password string) (model.TokenPair, error) {
	email = normalizeEmail(email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login for unknown email", "email", email)
		return model.TokenPair{}, model.NewAuthError(model.ErrInvalidCredentials, "incorrect email or password")
	}
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Info("Auth service: wrong password", "user_id", user.ID)
		return model.TokenPair{}, model.NewAuthError(model.ErrInvalidCredentials, "incorrect email or password")
	}

	pair, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue token: %w", err)
	}

	return pair, nil
}

func validateRegisterInput(input model.RegisterInput) error {
	if err := requireText("full_name", input.FullName); err != nil {
		return err
	}
	if err := validateEmail(input.Email); err != nil {
		return err
	}
	if err := requireText("phone", input.Phone); err != nil {
		return err
	}
	if len(input.Password) < minPasswordLength {
		return model.NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	if len(input.Password) > maxPasswordBytes {
		return model.NewValidationError("password", fmt.Sprintf("must be at most %d bytes", maxPasswordBytes))
	}
	if input.SpecialtyID != nil {
		if err := validatePositive("specialty_id", *input.SpecialtyID); err != nil {
			return err
		}
	}
	return nil
}
