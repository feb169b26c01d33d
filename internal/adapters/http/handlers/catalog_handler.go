package handlers

import (
	"errors"
	"net/url"
	"strconv"

	"motorcover/internal/core/domain"
	"motorcover/internal/core/services"
	"motorcover/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles insurance plan catalog endpoints
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List lists all purchasable plans. The storefront consumes the body
// as a plain array, so no envelope here.
// @Summary List insurance plans
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.PolicyTemplateResponse
// @Failure 500 {object} response.Response
// @Router /policies [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	plans, err := h.catalogService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list plans")
	}
	return c.JSON(plans)
}

// GetByTitle fetches one plan by title
// @Summary Get insurance plan
// @Tags Catalog
// @Produce json
// @Param title path string true "Plan title"
// @Success 200 {object} models.PolicyTemplateResponse
// @Failure 404 {object} response.Response
// @Router /policies/{title} [get]
func (h *CatalogHandler) GetByTitle(c *fiber.Ctx) error {
	// Plan titles contain spaces, so the param arrives percent-encoded.
	title, err := url.PathUnescape(c.Params("title"))
	if err != nil {
		title = c.Params("title")
	}

	plan, err := h.catalogService.GetByTitle(c.Context(), title)
	if err != nil {
		if errors.Is(err, domain.ErrTemplateNotFound) {
			return response.NotFound(c, "Plan not found")
		}
		return response.InternalServerError(c, "Failed to fetch plan")
	}
	return c.JSON(plan)
}

// Create adds a plan to the catalog (admin)
// @Summary Create insurance plan
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreatePlanInput true "Plan data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /policies [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var input services.CreatePlanInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	plan, err := h.catalogService.Create(c.Context(), &input)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			return response.FieldErrors(c, "Invalid plan data", verr.Fields)
		case errors.Is(err, domain.ErrMalformedPrice):
			return response.BadRequest(c, "Plan price carries no numeric value")
		case errors.Is(err, services.ErrPlanTitleTaken):
			return response.Conflict(c, "Plan title already exists")
		default:
			return response.InternalServerError(c, "Failed to create plan")
		}
	}

	return response.Created(c, "Plan created successfully", plan)
}

// Delete removes a plan from the catalog (admin)
// @Summary Delete insurance plan
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /policies/{id} [delete]
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid plan ID")
	}

	if err := h.catalogService.Delete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, "Failed to delete plan")
	}
	return response.Success(c, "Plan deleted successfully", nil)
}
