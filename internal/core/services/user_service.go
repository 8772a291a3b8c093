package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/utils"
	"github.com/google/uuid"
)

// UserService handles registration and authentication of users.
type UserService struct {
	BaseService
	userRepo  portsrepo.UserRepositoryFacade
	googleSvc portssvc.GoogleAuthSvcFacade
	now       func() time.Time
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade, googleSvc portssvc.GoogleAuthSvcFacade) *UserService {
	return &UserService{
		userRepo:  userRepo,
		googleSvc: googleSvc,
		now:       time.Now,
	}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// RegisterUser creates a new password-based user. The email must not be in use.
func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing user")
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.NewAppError(500, "failed to process password", err)
	}

	now := s.now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	user.CreatedBy = user.UserID
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save new user")
		return nil, err
	}

	s.LogInfo(ctx, "User registered", "userID", user.UserID)
	return &user, nil
}

// AuthenticateUser checks email/password credentials.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}
	return user, nil
}

// AuthenticateGoogleUser verifies a Google ID token and finds or creates the
// matching user. Existing users matched by email get their Google ID linked.
func (s *UserService) AuthenticateGoogleUser(ctx context.Context, idToken string) (*domain.User, error) {
	payload, err := s.googleSvc.ValidateGoogleIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	googleID := payload.Subject
	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)

	user, err := s.userRepo.FindUserByGoogleID(ctx, googleID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by Google ID")
		return nil, err
	}

	if email != "" {
		user, err = s.userRepo.FindUserByEmail(ctx, email)
		if err == nil {
			user.GoogleID = googleID
			user.LastUpdatedAt = s.now()
			user.LastUpdatedBy = user.UserID
			if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
				s.LogError(ctx, err, "Failed to link Google ID to existing user")
				return nil, err
			}
			return user, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up user by email")
			return nil, err
		}
	}

	now := s.now()
	newUser := domain.User{
		UserID:   uuid.NewString(),
		Name:     name,
		Email:    email,
		GoogleID: googleID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	newUser.CreatedBy = newUser.UserID
	newUser.LastUpdatedBy = newUser.UserID

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to save Google user")
		return nil, err
	}

	s.LogInfo(ctx, "Google user registered", "userID", newUser.UserID)
	return &newUser, nil
}

// AuthenticateGoogleCode exchanges an OAuth authorization code for Google
// tokens and signs the user in with the ID token Google returned.
func (s *UserService) AuthenticateGoogleCode(ctx context.Context, code string) (*domain.User, error) {
	token, err := s.googleSvc.ExchangeCodeForToken(ctx, code)
	if err != nil {
		return nil, err
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		s.GetLogger(ctx).Error("Google token response had no ID token")
		return nil, apperrors.NewAppError(500, "failed to retrieve ID token from Google", nil)
	}

	return s.AuthenticateGoogleUser(ctx, idToken)
}

// GetUserByID retrieves a user by ID.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}
