package handlers

import (
	"errors"

	"motorcover/internal/core/domain"
	"motorcover/internal/core/services"
	"motorcover/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// VehicleHandler handles vehicle catalog endpoints
type VehicleHandler struct {
	vehicleService *services.VehicleService
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleService *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// Validate resolves a plate number to its stored model and brand.
// The response shape is the quote form's contract, not the standard
// envelope.
// @Summary Validate vehicle plate
// @Description Resolve a plate number to model and brand for form pre-fill
// @Tags Vehicles
// @Produce json
// @Param plate path string true "Vehicle plate number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /vehicles/validate/{plate} [get]
func (h *VehicleHandler) Validate(c *fiber.Ctx) error {
	plate := c.Params("plate")

	vehicle, err := h.vehicleService.Validate(c.Context(), plate)
	if err != nil {
		if errors.Is(err, services.ErrVehicleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"valid": false,
			})
		}
		return response.InternalServerError(c, "Failed to look up vehicle")
	}

	return c.JSON(fiber.Map{
		"valid":     true,
		"carModel":  vehicle.Model,
		"brandName": vehicle.BrandName,
	})
}

// List lists the vehicle catalog
// @Summary List vehicles
// @Tags Vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	vehicles, err := h.vehicleService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list vehicles")
	}
	return response.Success(c, "Vehicles retrieved successfully", vehicles)
}

// Add adds a vehicle to the catalog (admin)
// @Summary Add vehicle
// @Tags Vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.AddVehicleInput true "Vehicle data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /vehicles [post]
func (h *VehicleHandler) Add(c *fiber.Ctx) error {
	var input services.AddVehicleInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	vehicle, err := h.vehicleService.Add(c.Context(), &input)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return response.FieldErrors(c, "Invalid vehicle data", verr.Fields)
		}
		return response.InternalServerError(c, "Failed to add vehicle")
	}

	return response.Created(c, "Vehicle added successfully", vehicle)
}
