package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/avoandes/avomarket/internal/domain/errors"
	"github.com/avoandes/avomarket/internal/domain/model"
	"github.com/avoandes/avomarket/internal/domain/repository"
	pkgAuth "github.com/avoandes/avomarket/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle and session token management. Auth is
// deliberately mock-grade: the store trusts the registered identity, there is
// no email verification, and accounts live only as long as the process.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// RegisterInput carries signup fields. Role decides which profile block is
// required: vendors need a farm name, buyers a company name.
type RegisterInput struct {
	Role     model.Role
	Email    string
	Password string

	Name        string
	Location    string
	ContactInfo string

	CompanyName string
	ContactName string
	Phone       string
	Address     string
}

func (in *RegisterInput) validate() error {
	if !in.Role.Valid() {
		return fmt.Errorf("%w: unknown role", domainErrors.ErrValidation)
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return fmt.Errorf("%w: email is invalid", domainErrors.ErrValidation)
	}
	if len(in.Password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", domainErrors.ErrValidation)
	}
	if in.Role == model.RoleVendor && in.Name == "" {
		return fmt.Errorf("%w: vendor name is required", domainErrors.ErrValidation)
	}
	if in.Role == model.RoleBuyer && in.CompanyName == "" {
		return fmt.Errorf("%w: company name is required", domainErrors.ErrValidation)
	}
	return nil
}

// Register creates a new account and returns it with a session token.
func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (*model.User, string, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := in.validate(); err != nil {
		return nil, "", err
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Role:         in.Role,
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Location:     in.Location,
		ContactInfo:  in.ContactInfo,
		CompanyName:  in.CompanyName,
		ContactName:  in.ContactName,
		Phone:        in.Phone,
		Address:      in.Address,
		CreatedAt:    time.Now().UTC(),
	}

	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate validates credentials and returns the account with a token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ParseToken extracts the account identity from a session token.
func (u *AuthUseCase) ParseToken(token string) (string, model.Role, error) {
	if token == "" {
		return "", "", pkgAuth.ErrInvalidToken
	}
	session, err := u.tokens.ParseToken(token)
	if err != nil {
		return "", "", err
	}
	role := model.Role(session.Role)
	if !role.Valid() {
		return "", "", pkgAuth.ErrInvalidToken
	}
	return session.Subject, role, nil
}

// Get fetches an account by role and identifier.
func (u *AuthUseCase) Get(ctx context.Context, role model.Role, id string) (*model.User, error) {
	return u.users.Get(ctx, role, id)
}

func (u *AuthUseCase) issueToken(user *model.User) (string, error) {
	return u.tokens.IssueToken(pkgAuth.Session{Subject: user.ID, Role: string(user.Role)})
}
