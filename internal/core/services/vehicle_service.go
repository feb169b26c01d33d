package services

import (
	"context"
	"errors"
	"strings"

	"motorcover/internal/adapters/persistence/models"
	"motorcover/internal/adapters/persistence/repositories"
	"motorcover/internal/core/domain"

	"gorm.io/gorm"
)

// Vehicle errors
var (
	ErrVehicleNotFound = errors.New("vehicle not found")
)

// VehicleService resolves plate numbers against the vehicle catalog to
// pre-fill quote forms
type VehicleService struct {
	vehicleRepo repositories.VehicleRepository
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(vehicleRepo repositories.VehicleRepository) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo}
}

// Validate resolves a plate number to the stored model and brand
func (s *VehicleService) Validate(ctx context.Context, plate string) (*models.Vehicle, error) {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" {
		return nil, ErrVehicleNotFound
	}

	vehicle, err := s.vehicleRepo.GetByNumber(ctx, plate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, domain.ErrPersistence
	}
	return vehicle, nil
}

// AddVehicleInput represents an admin catalog ingestion request
type AddVehicleInput struct {
	VehicleNumber string `json:"vehicleNumber"`
	ChassisNumber string `json:"chassisNumber"`
	BrandName     string `json:"brandName"`
	Model         string `json:"model"`
	CC            int    `json:"cc"`
	LuxuryType    bool   `json:"luxuryType"`
}

// Add inserts a vehicle into the catalog
func (s *VehicleService) Add(ctx context.Context, input *AddVehicleInput) (*models.Vehicle, error) {
	verr := domain.NewValidationError()
	if strings.TrimSpace(input.VehicleNumber) == "" {
		verr.Add("vehicleNumber", "Vehicle number is required")
	}
	if strings.TrimSpace(input.BrandName) == "" {
		verr.Add("brandName", "Brand name is required")
	}
	if strings.TrimSpace(input.Model) == "" {
		verr.Add("model", "Model is required")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	vehicle := &models.Vehicle{
		VehicleNumber: strings.ToUpper(strings.TrimSpace(input.VehicleNumber)),
		ChassisNumber: input.ChassisNumber,
		BrandName:     input.BrandName,
		Model:         input.Model,
		CC:            input.CC,
		LuxuryType:    input.LuxuryType,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, domain.ErrPersistence
	}
	return vehicle, nil
}

// List lists the vehicle catalog
func (s *VehicleService) List(ctx context.Context) ([]*models.Vehicle, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, domain.ErrPersistence
	}
	return vehicles, nil
}
