package repositories

import (
	"context"

	"motorcover/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// policyTemplateRepository implements PolicyTemplateRepository interface
type policyTemplateRepository struct {
	db *gorm.DB
}

// NewPolicyTemplateRepository creates a new policy template repository
func NewPolicyTemplateRepository(db *gorm.DB) PolicyTemplateRepository {
	return &policyTemplateRepository{db: db}
}

// Create creates a new plan template
func (r *policyTemplateRepository) Create(ctx context.Context, template *models.PolicyTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

// GetByTitle gets a plan template by its title
func (r *policyTemplateRepository) GetByTitle(ctx context.Context, title string) (*models.PolicyTemplate, error) {
	var template models.PolicyTemplate
	err := r.db.WithContext(ctx).Where("title = ?", title).First(&template).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// List lists all plan templates
func (r *policyTemplateRepository) List(ctx context.Context) ([]*models.PolicyTemplate, error) {
	var templates []*models.PolicyTemplate
	if err := r.db.WithContext(ctx).Order("price_minor").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// Delete soft deletes a plan template
func (r *policyTemplateRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.PolicyTemplate{}, id).Error
}
