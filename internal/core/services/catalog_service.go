package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"motorcover/internal/adapters/persistence/models"
	"motorcover/internal/adapters/persistence/repositories"
	"motorcover/internal/core/domain"
	"motorcover/internal/pkg/money"

	"gorm.io/gorm"
)

// Catalog errors
var (
	ErrPlanTitleTaken = errors.New("plan title already exists")
)

// CatalogService serves the purchasable plan catalog
type CatalogService struct {
	templateRepo repositories.PolicyTemplateRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(templateRepo repositories.PolicyTemplateRepository) *CatalogService {
	return &CatalogService{templateRepo: templateRepo}
}

// List lists all plans
func (s *CatalogService) List(ctx context.Context) ([]*models.PolicyTemplateResponse, error) {
	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, domain.ErrPersistence
	}

	responses := make([]*models.PolicyTemplateResponse, 0, len(templates))
	for _, t := range templates {
		responses = append(responses, t.ToResponse())
	}
	return responses, nil
}

// GetByTitle fetches one plan by its title
func (s *CatalogService) GetByTitle(ctx context.Context, title string) (*models.PolicyTemplateResponse, error) {
	template, err := s.templateRepo.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, domain.ErrPersistence
	}
	return template.ToResponse(), nil
}

// CreatePlanInput represents an admin plan creation request. Price arrives
// as a display string and is parsed exactly once, here at data entry.
type CreatePlanInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Terms       string `json:"terms"`
}

// Create adds a plan to the catalog
func (s *CatalogService) Create(ctx context.Context, input *CreatePlanInput) (*models.PolicyTemplateResponse, error) {
	verr := domain.NewValidationError()
	if strings.TrimSpace(input.Title) == "" {
		verr.Add("title", "Plan title is required")
	}
	if strings.TrimSpace(input.Price) == "" {
		verr.Add("price", "Plan price is required")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	amount, err := money.ParseDisplay(input.Price)
	if err != nil {
		return nil, domain.ErrMalformedPrice
	}

	template := &models.PolicyTemplate{
		Title:       input.Title,
		Description: input.Description,
		PriceMinor:  money.ToMinorUnits(amount),
		Terms:       input.Terms,
	}

	if err := s.templateRepo.Create(ctx, template); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPlanTitleTaken
		}
		return nil, domain.ErrPersistence
	}

	log.Printf("✅ Plan created: %s (%s)", template.Title, money.FormatINR(template.PriceMinor))
	return template.ToResponse(), nil
}

// Delete removes a plan from the catalog
func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	if err := s.templateRepo.Delete(ctx, id); err != nil {
		return domain.ErrPersistence
	}
	return nil
}
