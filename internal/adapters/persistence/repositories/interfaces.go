package repositories

import (
	"context"
	"time"

	"motorcover/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// VehicleRepository defines vehicle catalog repository interface.
// The catalog is read-only from the application's perspective apart from
// admin ingestion; lookups by plate return the first match.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByNumber(ctx context.Context, vehicleNumber string) (*models.Vehicle, error)
	List(ctx context.Context) ([]*models.Vehicle, error)
}

// PolicyTemplateRepository defines plan catalog repository interface
type PolicyTemplateRepository interface {
	Create(ctx context.Context, template *models.PolicyTemplate) error
	GetByTitle(ctx context.Context, title string) (*models.PolicyTemplate, error)
	List(ctx context.Context) ([]*models.PolicyTemplate, error)
	Delete(ctx context.Context, id uint) error
}

// IssuedPolicyRepository defines issued policy repository interface
type IssuedPolicyRepository interface {
	Create(ctx context.Context, policy *models.IssuedPolicy) error
	GetByPolicyNo(ctx context.Context, policyNo string) (*models.IssuedPolicy, error)
	ExistsByPolicyNo(ctx context.Context, policyNo string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*models.IssuedPolicy, int64, error)
	GetByHolderEmail(ctx context.Context, email string) ([]*models.IssuedPolicy, error)
	ExpireDue(ctx context.Context, asOf time.Time) (int64, error)
}
