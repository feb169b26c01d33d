package models

import (
	"time"

	"motorcover/internal/pkg/money"

	"gorm.io/gorm"
)

// ============================================================
// Accounts
// ============================================================

// User represents users table
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Email       string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password    string         `gorm:"size:255;not null" json:"-"`
	PhoneNumber string         `gorm:"size:20" json:"phoneNumber"`
	Age         int            `json:"age"`
	DOB         string         `gorm:"size:10" json:"dob"`
	Role        string         `gorm:"size:20;default:'USER'" json:"role"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO, never carries the password hash
type UserResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Age         int       `json:"age"`
	DOB         string    `json:"dob"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Age:         u.Age,
		DOB:         u.DOB,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Vehicle catalog
// ============================================================

// Vehicle represents the vehicles table. Rows are seeded or loaded by an
// admin and read to pre-fill quote forms; the application never updates them.
type Vehicle struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	VehicleNumber string    `gorm:"size:20;not null;index" json:"vehicleNumber"`
	ChassisNumber string    `gorm:"size:30" json:"chassisNumber"`
	BrandName     string    `gorm:"size:50;not null" json:"brandName"`
	Model         string    `gorm:"size:50;not null" json:"model"`
	CC            int       `json:"cc"`
	LuxuryType    bool      `gorm:"default:false" json:"luxuryType"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// ============================================================
// Plan catalog
// ============================================================

// PolicyTemplate represents the policy_templates table, a purchasable plan.
// Price is stored as integer paise; the display string is produced at the
// boundary, never parsed back at read time.
type PolicyTemplate struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"uniqueIndex;size:100;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	PriceMinor  int64          `gorm:"not null" json:"-"`
	Terms       string         `gorm:"type:text" json:"terms"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PolicyTemplate) TableName() string {
	return "policy_templates"
}

// PolicyTemplateResponse DTO
type PolicyTemplateResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Terms       string `json:"terms"`
}

func (t *PolicyTemplate) ToResponse() *PolicyTemplateResponse {
	return &PolicyTemplateResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Price:       money.FormatINR(t.PriceMinor),
		Terms:       t.Terms,
	}
}

// ============================================================
// Issued policies
// ============================================================

// Policy status values
const (
	PolicyStatusActive  = "Active"
	PolicyStatusExpired = "Expired"
)

// PolicyHolder is the buyer snapshot embedded in an issued policy
type PolicyHolder struct {
	Name          string `gorm:"column:holder_name;size:100;not null" json:"name"`
	Email         string `gorm:"column:holder_email;size:100;not null;index" json:"email"`
	ContactNumber string `gorm:"column:holder_contact;size:20;not null" json:"contactNumber"`
}

// VehicleDetails is the vehicle snapshot embedded in an issued policy
type VehicleDetails struct {
	Type   string `gorm:"column:vehicle_type;size:50;not null" json:"type"`
	Number string `gorm:"column:vehicle_number;size:20;not null" json:"number"`
	Model  string `gorm:"column:vehicle_model;size:50;not null" json:"model"`
}

// IssuedPolicy represents the issued_policies table, a purchased policy.
// Holder and vehicle details are value copies taken at issuance; later edits
// to the User or Vehicle records do not propagate here.
type IssuedPolicy struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	PolicyNo       string         `gorm:"uniqueIndex;size:16;not null" json:"policyId"`
	PolicyName     string         `gorm:"size:100;not null" json:"policyName"`
	Holder         PolicyHolder   `gorm:"embedded" json:"policyHolder"`
	Vehicle        VehicleDetails `gorm:"embedded" json:"vehicleDetails"`
	PremiumAmount  float64        `gorm:"type:decimal(15,2);not null" json:"premiumAmount"`
	CoverageAmount float64        `gorm:"type:decimal(15,2);not null" json:"coverageAmount"`
	StartDate      time.Time      `gorm:"not null" json:"startDate"`
	EndDate        time.Time      `gorm:"not null;index" json:"endDate"`
	Status         string         `gorm:"column:policy_status;size:10;not null;default:'Active';index" json:"policyStatus"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (IssuedPolicy) TableName() string {
	return "issued_policies"
}

func (p *IssuedPolicy) IsActive() bool {
	return p.Status == PolicyStatusActive
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates or updates all application tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Vehicle{},
		&PolicyTemplate{},
		&IssuedPolicy{},
	)
}
