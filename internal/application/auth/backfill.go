package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// Estados posibles de un usuario en el backfill de claims.
const (
	BackfillMigrated         = "migrated"
	BackfillAlreadyHasClaims = "already_has_claims"
	BackfillNoStore          = "no_store"
	BackfillError            = "error"
)

// BackfillStats contadores del backfill.
type BackfillStats struct {
	Total            int `json:"total"`
	Migrated         int `json:"migrated"`
	AlreadyHasClaims int `json:"already_has_claims"`
	NoStore          int `json:"no_store"`
	Errors           int `json:"errors"`
}

// BackfillResult resultado por usuario.
type BackfillResult struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Status  string `json:"status"`
	StoreID string `json:"store_id,omitempty"`
	Role    string `json:"role,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BackfillReport resumen completo; se guarda como log JSON.
type BackfillReport struct {
	Timestamp time.Time        `json:"timestamp"`
	Stats     BackfillStats    `json:"stats"`
	Results   []BackfillResult `json:"results"`
}

// ClaimsBackfill asigna store_id y rol owner a las cuentas creadas antes de
// que el token llevara la tienda. La tienda se busca por owner_id.
type ClaimsBackfill struct {
	users  repository.UserRepository
	stores repository.StoreRepository
	now    func() time.Time
}

// NewClaimsBackfill construye el proceso.
func NewClaimsBackfill(users repository.UserRepository, stores repository.StoreRepository) *ClaimsBackfill {
	return &ClaimsBackfill{users: users, stores: stores, now: time.Now}
}

// Run procesa todos los usuarios. Un error al actualizar un usuario se
// registra en el reporte y no corta el proceso; sólo falla si no se pueden
// listar los usuarios. onResult, si no es nil, se invoca por cada usuario.
func (b *ClaimsBackfill) Run(ctx context.Context, onResult func(BackfillResult)) (*BackfillReport, error) {
	users, err := b.users.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}

	report := &BackfillReport{Timestamp: b.now(), Results: make([]BackfillResult, 0, len(users))}
	for _, u := range users {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		res := b.migrate(ctx, u)
		report.Stats.Total++
		switch res.Status {
		case BackfillMigrated:
			report.Stats.Migrated++
		case BackfillAlreadyHasClaims:
			report.Stats.AlreadyHasClaims++
		case BackfillNoStore:
			report.Stats.NoStore++
		default:
			report.Stats.Errors++
		}
		report.Results = append(report.Results, res)
		if onResult != nil {
			onResult(res)
		}
	}
	return report, nil
}

func (b *ClaimsBackfill) migrate(ctx context.Context, u *entity.User) BackfillResult {
	res := BackfillResult{UserID: u.ID, Email: u.Email}
	if u.StoreID != "" {
		res.Status = BackfillAlreadyHasClaims
		res.StoreID = u.StoreID
		res.Role = u.Role
		return res
	}

	store, err := b.stores.GetByOwnerID(ctx, u.ID)
	if err != nil {
		res.Status = BackfillError
		res.Error = err.Error()
		return res
	}
	if store == nil {
		res.Status = BackfillNoStore
		return res
	}

	if err := b.users.UpdateClaims(ctx, u.ID, store.ID, entity.RoleOwner); err != nil {
		res.Status = BackfillError
		res.Error = err.Error()
		return res
	}
	res.Status = BackfillMigrated
	res.StoreID = store.ID
	res.Role = entity.RoleOwner
	return res
}
