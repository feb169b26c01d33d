package config

import (
	"log"

	"motorcover/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// SeedCatalogData seeds the vehicle registry and the policy template catalog
func SeedCatalogData(db *gorm.DB) error {
	// Seed Vehicles
	if err := seedVehicles(db); err != nil {
		return err
	}

	// Seed Policy Templates
	if err := seedPolicyTemplates(db); err != nil {
		return err
	}

	log.Println("✅ Catalog data seeded successfully")
	return nil
}

func seedVehicles(db *gorm.DB) error {
	vehicles := []models.Vehicle{
		{
			VehicleNumber: "TN01AB1234",
			ChassisNumber: "MA3EYD32S00254967",
			BrandName:     "Maruti Suzuki",
			Model:         "Swift VXI",
			CC:            1197,
			LuxuryType:    false,
		},
		{
			VehicleNumber: "KA05MH9876",
			ChassisNumber: "MAT625187KLP43210",
			BrandName:     "Tata",
			Model:         "Nexon XZ+",
			CC:            1199,
			LuxuryType:    false,
		},
		{
			VehicleNumber: "MH12DE4455",
			ChassisNumber: "MBHZC12ELHH654321",
			BrandName:     "Hyundai",
			Model:         "Creta SX",
			CC:            1497,
			LuxuryType:    false,
		},
		{
			VehicleNumber: "DL08CA7001",
			ChassisNumber: "WBA7E2C58JG740112",
			BrandName:     "BMW",
			Model:         "530i",
			CC:            1998,
			LuxuryType:    true,
		},
		{
			VehicleNumber: "TN22BC5511",
			ChassisNumber: "MALBB51BLGM223344",
			BrandName:     "Honda",
			Model:         "City ZX",
			CC:            1498,
			LuxuryType:    false,
		},
	}

	for _, v := range vehicles {
		var existing models.Vehicle
		if err := db.Where("vehicle_number = ?", v.VehicleNumber).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&v).Error; err != nil {
					return err
				}
				log.Printf("   Created vehicle: %s (%s %s)", v.VehicleNumber, v.BrandName, v.Model)
			}
		}
	}
	return nil
}

// defaultPolicyTemplates returns the plans seeded into an empty catalog.
// Prices are stored in paise.
func defaultPolicyTemplates() []models.PolicyTemplate {
	return []models.PolicyTemplate{
		{
			Title:       "Basic Coverage",
			Description: "Covers liability and limited collision.",
			PriceMinor:  200000,
			Terms:       "12 month term. Third-party liability up to the statutory limit, own-damage collision capped at ₹50,000 per claim with ₹2,000 excess.",
		},
		{
			Title:       "Standard Coverage",
			Description: "Includes liability, collision, and theft protection.",
			PriceMinor:  450000,
			Terms:       "12 month term. Liability, collision, and theft cover with ₹1,500 excess per claim. Claims require an FIR copy for theft.",
		},
		{
			Title:       "Comprehensive Coverage",
			Description: "Offers full protection, including natural disasters.",
			PriceMinor:  700000,
			Terms:       "12 month term. Covers accident, theft, fire, flood, and storm damage with zero depreciation on parts for vehicles under 5 years.",
		},
		{
			Title:       "Third-Party Liability",
			Description: "Covers damages you cause to others.",
			PriceMinor:  300000,
			Terms:       "12 month term. Covers bodily injury and property damage to third parties only. No own-damage cover.",
		},
		{
			Title:       "Collision Coverage",
			Description: "Pays for repairs after an accident.",
			PriceMinor:  550000,
			Terms:       "12 month term. Repairs at network garages with cashless settlement, ₹2,500 excess per claim. Excludes theft and fire.",
		},
		{
			Title:       "Theft Protection",
			Description: "Covers your vehicle in case of theft.",
			PriceMinor:  400000,
			Terms:       "12 month term. Pays the insured declared value on total theft. FIR must be filed within 48 hours of discovery.",
		},
		{
			Title:       "Fire and Theft Coverage",
			Description: "Covers fire and theft damages, excluding collisions.",
			PriceMinor:  350000,
			Terms:       "12 month term. Covers fire, explosion, and theft losses. Collision and third-party damage are excluded.",
		},
		{
			Title:       "Personal Injury Protection",
			Description: "Covers medical expenses regardless of fault.",
			PriceMinor:  600000,
			Terms:       "12 month term. Medical expenses for driver and passengers up to ₹2,00,000 per person regardless of fault.",
		},
		{
			Title:       "Uninsured Motorist Coverage",
			Description: "Protects you against uninsured drivers.",
			PriceMinor:  450000,
			Terms:       "12 month term. Covers injury and vehicle damage caused by uninsured or hit-and-run drivers, ₹1,000 excess.",
		},
		{
			Title:       "Roadside Assistance",
			Description: "Includes towing, flat tire changes, and more.",
			PriceMinor:  150000,
			Terms:       "12 month term. Unlimited callouts for towing up to 50 km, flat tire, battery jump-start, and fuel delivery.",
		},
	}
}

func seedPolicyTemplates(db *gorm.DB) error {
	for _, t := range defaultPolicyTemplates() {
		var existing models.PolicyTemplate
		if err := db.Where("title = ?", t.Title).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&t).Error; err != nil {
					return err
				}
				log.Printf("   Created policy template: %s", t.Title)
			}
		}
	}
	return nil
}
