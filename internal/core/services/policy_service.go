package services

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"math/big"
	"regexp"
	"strings"
	"time"

	"motorcover/internal/adapters/persistence/models"
	"motorcover/internal/adapters/persistence/repositories"
	"motorcover/internal/core/domain"
	"motorcover/internal/pkg/money"

	"gorm.io/gorm"
)

const (
	// policyNoPrefix is the fixed marker on every generated policy number
	policyNoPrefix = "POL"

	// policyNoLength is the random suffix length
	policyNoLength = 8

	// maxPolicyNoAttempts bounds the generate-check-retry loop. Collisions
	// are vanishingly rare with 36^8 candidates, but they are checked, not
	// assumed away.
	maxPolicyNoAttempts = 5

	// persistTimeout bounds the store write for one issuance
	persistTimeout = 5 * time.Second

	// coverageMultiplier derives the coverage liability from the premium
	coverageMultiplier = 12
)

var (
	policyNoCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/(\d{2})$`)
	cardCVVPattern    = regexp.MustCompile(`^\d{3}$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// PolicyService converts a plan selection plus buyer and vehicle details
// into a persisted issued policy, and keeps policy statuses consistent
// with their end dates.
type PolicyService struct {
	policyRepo repositories.IssuedPolicyRepository
	now        func() time.Time
}

// NewPolicyService creates a new policy service
func NewPolicyService(policyRepo repositories.IssuedPolicyRepository) *PolicyService {
	return &PolicyService{
		policyRepo: policyRepo,
		now:        time.Now,
	}
}

// HolderInput is the buyer's details from the payment form
type HolderInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
}

// VehicleInput is the insured vehicle's details from the quote form
type VehicleInput struct {
	Type   string `json:"type"`
	Number string `json:"number"`
	Model  string `json:"model"`
}

// PaymentInput is the payment instrument. It is shape-checked only and
// never stored.
type PaymentInput struct {
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"` // MM/YY
	CVV        string `json:"cvv"`
}

// IssuePolicyInput represents one purchase request
type IssuePolicyInput struct {
	PolicyName string       `json:"policyName"`
	Price      string       `json:"premiumAmount"` // display price, e.g. "₹4,500"
	Holder     HolderInput  `json:"policyHolder"`
	Vehicle    VehicleInput `json:"vehicleDetails"`
	Payment    PaymentInput `json:"payment"`
}

// Issue validates the purchase, derives the financial and temporal fields
// and persists a new IssuedPolicy. The returned record is exactly what was
// stored. Validation failures are reported before anything touches the
// store.
func (s *PolicyService) Issue(ctx context.Context, input *IssuePolicyInput) (*models.IssuedPolicy, error) {
	if verr := s.validateIssueInput(input); verr.HasErrors() {
		return nil, verr
	}

	premium, err := money.ParseDisplay(input.Price)
	if err != nil {
		return nil, domain.ErrMalformedPrice
	}

	startDate, endDate := domain.PolicyPeriod(s.now())

	policy := &models.IssuedPolicy{
		PolicyName: input.PolicyName,
		Holder: models.PolicyHolder{
			Name:          input.Holder.Name,
			Email:         input.Holder.Email,
			ContactNumber: input.Holder.ContactNumber,
		},
		Vehicle: models.VehicleDetails{
			Type:   input.Vehicle.Type,
			Number: input.Vehicle.Number,
			Model:  input.Vehicle.Model,
		},
		PremiumAmount:  premium,
		CoverageAmount: premium * coverageMultiplier,
		StartDate:      startDate,
		EndDate:        endDate,
		Status:         models.PolicyStatusActive,
	}

	if err := s.persistWithFreshPolicyNo(ctx, policy); err != nil {
		return nil, err
	}

	log.Printf("✅ Policy issued: %s (%s) for %s", policy.PolicyNo, policy.PolicyName, policy.Holder.Email)
	return policy, nil
}

// persistWithFreshPolicyNo generates a policy number and inserts the record,
// regenerating when the number is taken. The unique index on policy_no is
// authoritative: a duplicate-key rejection from the insert is the retry
// trigger, so concurrent issuances cannot slip past the pre-check.
func (s *PolicyService) persistWithFreshPolicyNo(ctx context.Context, policy *models.IssuedPolicy) error {
	for attempt := 0; attempt < maxPolicyNoAttempts; attempt++ {
		policyNo, err := generatePolicyNo()
		if err != nil {
			return err
		}

		taken, err := s.policyRepo.ExistsByPolicyNo(ctx, policyNo)
		if err != nil {
			return domain.ErrPersistence
		}
		if taken {
			continue
		}

		policy.PolicyNo = policyNo

		writeCtx, cancel := context.WithTimeout(ctx, persistTimeout)
		err = s.policyRepo.Create(writeCtx, policy)
		cancel()

		switch {
		case err == nil:
			return nil
		case errors.Is(err, gorm.ErrDuplicatedKey):
			log.Printf("⚠️ Policy number collision on %s, regenerating", policyNo)
			continue
		default:
			return domain.ErrPersistence
		}
	}

	return domain.ErrPersistence
}

func (s *PolicyService) validateIssueInput(input *IssuePolicyInput) *domain.ValidationError {
	verr := domain.NewValidationError()

	if strings.TrimSpace(input.PolicyName) == "" {
		verr.Add("policyName", "Policy name is required")
	}

	if strings.TrimSpace(input.Holder.Name) == "" {
		verr.Add("name", "Policy holder name is required")
	}
	if strings.TrimSpace(input.Holder.Email) == "" {
		verr.Add("email", "Policy holder email is required")
	} else if !emailPattern.MatchString(input.Holder.Email) {
		verr.Add("email", "Policy holder email is not valid")
	}
	if strings.TrimSpace(input.Holder.ContactNumber) == "" {
		verr.Add("contactNumber", "Contact number is required")
	}

	if strings.TrimSpace(input.Vehicle.Type) == "" {
		verr.Add("vehicleType", "Vehicle type is required")
	}
	if strings.TrimSpace(input.Vehicle.Number) == "" {
		verr.Add("vehicleNumber", "Vehicle number is required")
	}
	if strings.TrimSpace(input.Vehicle.Model) == "" {
		verr.Add("vehicleModel", "Vehicle model is required")
	}

	if !cardNumberPattern.MatchString(input.Payment.CardNumber) {
		verr.Add("cardNumber", "Card number must be exactly 16 digits")
	}
	if err := validateCardExpiry(input.Payment.Expiry, s.now()); err != nil {
		verr.Add("expiry", err.Error())
	}
	if !cardCVVPattern.MatchString(input.Payment.CVV) {
		verr.Add("cvv", "CVV must be exactly 3 digits")
	}

	return verr
}

// validateCardExpiry checks the MM/YY shape and requires the expiry to be
// strictly after the current month/year
func validateCardExpiry(expiry string, now time.Time) error {
	match := cardExpiryPattern.FindStringSubmatch(expiry)
	if match == nil {
		return errors.New("Expiry must be in MM/YY format")
	}

	month := int(match[1][0]-'0')*10 + int(match[1][1]-'0')
	year := 2000 + int(match[2][0]-'0')*10 + int(match[2][1]-'0')

	if year < now.Year() || (year == now.Year() && month <= int(now.Month())) {
		return errors.New("Card has expired")
	}

	return nil
}

// generatePolicyNo produces "POL" plus 8 uppercase alphanumerics from a
// cryptographic source
func generatePolicyNo() (string, error) {
	var b strings.Builder
	b.WriteString(policyNoPrefix)

	charsetLen := big.NewInt(int64(len(policyNoCharset)))
	for i := 0; i < policyNoLength; i++ {
		n, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", err
		}
		b.WriteByte(policyNoCharset[n.Int64()])
	}

	return b.String(), nil
}

// GetByPolicyNo gets one issued policy for the dashboard detail view
func (s *PolicyService) GetByPolicyNo(ctx context.Context, policyNo string) (*models.IssuedPolicy, error) {
	policy, err := s.policyRepo.GetByPolicyNo(ctx, policyNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPolicyNotFound
		}
		return nil, err
	}
	return policy, nil
}

// List lists issued policies, newest first
func (s *PolicyService) List(ctx context.Context, offset, limit int) ([]*models.IssuedPolicy, int64, error) {
	return s.policyRepo.List(ctx, offset, limit)
}

// GetByHolderEmail gets the policies purchased by one holder
func (s *PolicyService) GetByHolderEmail(ctx context.Context, email string) ([]*models.IssuedPolicy, error) {
	return s.policyRepo.GetByHolderEmail(ctx, email)
}

// SweepExpired flips every Active policy whose end date has passed to
// Expired and reports how many records changed. Running it twice in the
// same instant changes nothing the second time.
func (s *PolicyService) SweepExpired(ctx context.Context, asOf time.Time) (int64, error) {
	if asOf.IsZero() {
		asOf = s.now()
	}

	expired, err := s.policyRepo.ExpireDue(ctx, asOf)
	if err != nil {
		return 0, domain.ErrPersistence
	}

	if expired > 0 {
		log.Printf("🧹 Status sweep expired %d policies", expired)
	}
	return expired, nil
}
