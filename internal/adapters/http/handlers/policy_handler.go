package handlers

import (
	"errors"
	"fmt"
	"time"

	"motorcover/internal/core/domain"
	"motorcover/internal/core/services"
	"motorcover/internal/pkg/pagination"
	"motorcover/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PolicyHandler handles policy issuance and dashboard endpoints
type PolicyHandler struct {
	policyService *services.PolicyService
}

// NewPolicyHandler creates a new policy handler
func NewPolicyHandler(policyService *services.PolicyService) *PolicyHandler {
	return &PolicyHandler{policyService: policyService}
}

// Create issues a new policy from a plan selection plus payment form input
// @Summary Purchase a policy
// @Description Validate payment input, derive premium/coverage/dates and persist the policy
// @Tags Policies
// @Accept json
// @Produce json
// @Param body body services.IssuePolicyInput true "Purchase data"
// @Success 201 {object} models.IssuedPolicy
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /create-policy [post]
func (h *PolicyHandler) Create(c *fiber.Ctx) error {
	var input services.IssuePolicyInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	policy, err := h.policyService.Issue(c.Context(), &input)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			return response.FieldErrors(c, "Invalid purchase data", verr.Fields)
		case errors.Is(err, domain.ErrMalformedPrice):
			return response.InternalServerError(c, "Plan price carries no numeric value")
		default:
			return response.InternalServerError(c, "Failed to issue policy")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(policy)
}

// List lists issued policies. Without query parameters every record is
// returned as a bare array (the dashboard contract); with page/limit the
// result is paginated.
// @Summary List issued policies
// @Tags Policies
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {array} models.IssuedPolicy
// @Failure 404 {object} response.Response
// @Router /user-policies [get]
func (h *PolicyHandler) List(c *fiber.Ctx) error {
	if c.Query("page") == "" && c.Query("limit") == "" {
		policies, _, err := h.policyService.List(c.Context(), 0, -1)
		if err != nil {
			return response.InternalServerError(c, "Failed to list policies")
		}
		if len(policies) == 0 {
			return response.NotFound(c, "No policies found")
		}
		return c.JSON(policies)
	}

	params := pagination.GetParams(c)
	policies, total, err := h.policyService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list policies")
	}
	if total == 0 {
		return response.NotFound(c, "No policies found")
	}
	return c.JSON(pagination.NewResponse(policies, params, total))
}

// ByHolder lists the policies purchased by one holder
// @Summary List a holder's policies
// @Tags Policies
// @Produce json
// @Param email path string true "Holder email"
// @Success 200 {array} models.IssuedPolicy
// @Failure 404 {object} response.Response
// @Router /user-policies/{email} [get]
func (h *PolicyHandler) ByHolder(c *fiber.Ctx) error {
	email := c.Params("email")

	policies, err := h.policyService.GetByHolderEmail(c.Context(), email)
	if err != nil {
		return response.InternalServerError(c, "Failed to list policies")
	}
	if len(policies) == 0 {
		return response.NotFound(c, "No policies found for this holder")
	}

	return c.JSON(policies)
}

// GetByPolicyNo fetches one issued policy by its policy number
// @Summary Get one issued policy
// @Tags Policies
// @Produce json
// @Param policyId path string true "Policy number"
// @Success 200 {object} models.IssuedPolicy
// @Failure 404 {object} response.Response
// @Router /policy/{policyId} [get]
func (h *PolicyHandler) GetByPolicyNo(c *fiber.Ctx) error {
	policyNo := c.Params("policyId")

	policy, err := h.policyService.GetByPolicyNo(c.Context(), policyNo)
	if err != nil {
		if errors.Is(err, domain.ErrPolicyNotFound) {
			return response.NotFound(c, "Policy not found")
		}
		return response.InternalServerError(c, "Failed to fetch policy")
	}

	return c.JSON(policy)
}

// UpdateStatus runs the status sweep on demand
// @Summary Sweep expired policies
// @Description Flip Active policies whose end date has passed to Expired
// @Tags Policies
// @Produce json
// @Success 200 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /update-policy-status [put]
func (h *PolicyHandler) UpdateStatus(c *fiber.Ctx) error {
	expired, err := h.policyService.SweepExpired(c.Context(), time.Now())
	if err != nil {
		return response.InternalServerError(c, "Failed to update policy statuses")
	}

	return response.Success(c, fmt.Sprintf("Policy statuses updated (%d expired)", expired), fiber.Map{
		"expired": expired,
	})
}
