// Package auth alta de comercios y login del panel.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/catalog"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/validation"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/jwt"
)

// maxSlugAttempts sufijos numéricos probados antes de caer en un sufijo aleatorio.
const maxSlugAttempts = 20

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// OnboardingTxRunner ejecuta el alta de tienda y usuario en una transacción.
type OnboardingTxRunner interface {
	RunOnboarding(ctx context.Context, fn func(stores repository.StoreRepository, users repository.UserRepository) error) error
}

// AuthUseCase casos de uso de autenticación: registro de comercio y login.
type AuthUseCase struct {
	tx       OnboardingTxRunner
	users    repository.UserRepository
	stores   repository.StoreRepository
	validate *validation.Validator
	jwtCfg   JWTConfig
	menuURL  catalog.MenuURLFunc
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	tx OnboardingTxRunner,
	users repository.UserRepository,
	stores repository.StoreRepository,
	v *validation.Validator,
	jwtCfg JWTConfig,
	menuURL catalog.MenuURLFunc,
) *AuthUseCase {
	return &AuthUseCase{tx: tx, users: users, stores: stores, validate: v, jwtCfg: jwtCfg, menuURL: menuURL}
}

// RegisterMerchant crea la tienda y su usuario owner en una sola transacción
// y devuelve un token ya asociado a la tienda.
func (uc *AuthUseCase) RegisterMerchant(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	in.Email = normalizeEmail(in.Email)
	in.StoreName = strings.TrimSpace(in.StoreName)
	in.Name = strings.TrimSpace(in.Name)
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}

	existing, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         entity.RoleOwner,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	store := &entity.Store{
		ID:        uuid.NewString(),
		OwnerID:   user.ID,
		Name:      in.StoreName,
		Status:    entity.StoreStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	user.StoreID = store.ID

	err = uc.tx.RunOnboarding(ctx, func(stores repository.StoreRepository, users repository.UserRepository) error {
		slug, err := uniqueSlug(ctx, stores, catalog.Slugify(in.StoreName))
		if err != nil {
			return err
		}
		store.Slug = slug
		if err := stores.Create(ctx, store); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				// Otro alta tomó el mismo slug entre la consulta y el insert.
				return domain.ErrConflict
			}
			return err
		}
		if err := users.Create(ctx, user); err != nil {
			// Alta concurrente con el mismo email.
			if errors.Is(err, domain.ErrDuplicate) {
				return domain.ErrEmailAlreadyExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.authResponse(user, store)
}

// Login valida credenciales y devuelve el token. Email inexistente y password
// incorrecta responden igual.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	in.Email = normalizeEmail(in.Email)
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	// Cuentas legacy sin tienda: requieren el backfill de claims.
	if user.StoreID == "" {
		return nil, domain.ErrForbidden
	}
	store, err := uc.stores.GetByID(ctx, user.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrForbidden
	}
	if store.Status != entity.StoreStatusActive {
		return nil, domain.ErrForbidden
	}
	return uc.authResponse(user, store)
}

func (uc *AuthUseCase) authResponse(user *entity.User, store *entity.Store) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, store.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &dto.AuthResponse{
		Token: token,
		User:  toUserResponse(user),
		Store: catalog.ToStoreResponse(store, uc.menuURL),
	}, nil
}

// uniqueSlug prueba base, base-2, base-3... y como último recurso un sufijo aleatorio.
func uniqueSlug(ctx context.Context, stores repository.StoreRepository, base string) (string, error) {
	for i := 1; i <= maxSlugAttempts; i++ {
		candidate := base
		if i > 1 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}
		s, err := stores.GetBySlug(ctx, candidate)
		if err != nil {
			return "", err
		}
		if s == nil {
			return candidate, nil
		}
	}
	return base + "-" + uuid.NewString()[:8], nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		StoreID:   u.StoreID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
