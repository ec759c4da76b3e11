package usecase

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/SheikhZaeem/Task-Manager/internal/domain"
	"github.com/SheikhZaeem/Task-Manager/internal/infrastructure"
	"github.com/SheikhZaeem/Task-Manager/internal/repository"
)

type UserUsecase struct {
	repo   repository.UserRepository
	tokens *infrastructure.JWTService
}

func NewUserUsecase(repo repository.UserRepository, tokens *infrastructure.JWTService) *UserUsecase {
	return &UserUsecase{repo: repo, tokens: tokens}
}

// Register creates a new account. The username check and the insert are two
// separate store operations; two concurrent registrations for the same
// username can both pass the check.
func (uc *UserUsecase) Register(ctx context.Context, username, password string) error {
	existing, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("lookup username: %w", err)
	}
	if existing != nil {
		return domain.ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("failed to hash password")
		return err
	}

	user := &domain.User{
		Username: username,
		Password: string(hash),
	}
	if _, err := uc.repo.Insert(ctx, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Login verifies the credentials and issues a signed token. Unknown username
// and wrong password both return domain.ErrInvalidCredentials.
func (uc *UserUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("lookup username: %w", err)
	}
	if user == nil {
		return "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.GenerateToken(user.ID.Hex(), user.Username)
	if err != nil {
		log.Println("failed to generate token")
		return "", err
	}
	return token, nil
}
