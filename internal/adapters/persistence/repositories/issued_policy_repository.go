package repositories

import (
	"context"
	"time"

	"motorcover/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// issuedPolicyRepository implements IssuedPolicyRepository interface
type issuedPolicyRepository struct {
	db *gorm.DB
}

// NewIssuedPolicyRepository creates a new issued policy repository
func NewIssuedPolicyRepository(db *gorm.DB) IssuedPolicyRepository {
	return &issuedPolicyRepository{db: db}
}

// Create persists a new issued policy. The unique index on policy_no makes
// the database the authority on number collisions; callers treat
// gorm.ErrDuplicatedKey as the signal to regenerate and retry.
func (r *issuedPolicyRepository) Create(ctx context.Context, policy *models.IssuedPolicy) error {
	return r.db.WithContext(ctx).Create(policy).Error
}

// GetByPolicyNo gets an issued policy by its policy number
func (r *issuedPolicyRepository) GetByPolicyNo(ctx context.Context, policyNo string) (*models.IssuedPolicy, error) {
	var policy models.IssuedPolicy
	err := r.db.WithContext(ctx).Where("policy_no = ?", policyNo).First(&policy).Error
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

// ExistsByPolicyNo checks if a policy number is already taken
func (r *issuedPolicyRepository) ExistsByPolicyNo(ctx context.Context, policyNo string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.IssuedPolicy{}).
		Where("policy_no = ?", policyNo).Count(&count).Error
	return count > 0, err
}

// List lists issued policies with pagination, newest first
func (r *issuedPolicyRepository) List(ctx context.Context, offset, limit int) ([]*models.IssuedPolicy, int64, error) {
	var policies []*models.IssuedPolicy
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.IssuedPolicy{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&policies).Error; err != nil {
		return nil, 0, err
	}

	return policies, total, nil
}

// GetByHolderEmail gets all policies purchased by a holder
func (r *issuedPolicyRepository) GetByHolderEmail(ctx context.Context, email string) ([]*models.IssuedPolicy, error) {
	var policies []*models.IssuedPolicy
	err := r.db.WithContext(ctx).
		Where("holder_email = ?", email).
		Order("created_at DESC").
		Find(&policies).Error
	if err != nil {
		return nil, err
	}
	return policies, nil
}

// ExpireDue flips Active policies whose end date has passed to Expired.
// A single conditional UPDATE keeps the sweep idempotent: a second run in the
// same instant matches no rows.
func (r *issuedPolicyRepository) ExpireDue(ctx context.Context, asOf time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.IssuedPolicy{}).
		Where("policy_status = ? AND end_date <= ?", models.PolicyStatusActive, asOf).
		Update("policy_status", models.PolicyStatusExpired)
	return result.RowsAffected, result.Error
}
