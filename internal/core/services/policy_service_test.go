package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"motorcover/internal/adapters/persistence/models"
	"motorcover/internal/core/domain"

	"gorm.io/gorm"
)

type mockPolicyRepo struct {
	createCalls   int
	createErrs    []error
	stored        []*models.IssuedPolicy
	taken         map[string]bool
	existsErr     error
	dueForExpiry  int64
	expireErr     error
	lastSweepAsOf time.Time
}

func (m *mockPolicyRepo) Create(ctx context.Context, policy *models.IssuedPolicy) error {
	m.createCalls++
	if len(m.createErrs) > 0 {
		err := m.createErrs[0]
		m.createErrs = m.createErrs[1:]
		if err != nil {
			return err
		}
	}
	m.stored = append(m.stored, policy)
	return nil
}

func (m *mockPolicyRepo) GetByPolicyNo(ctx context.Context, policyNo string) (*models.IssuedPolicy, error) {
	for _, p := range m.stored {
		if p.PolicyNo == policyNo {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPolicyRepo) ExistsByPolicyNo(ctx context.Context, policyNo string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.taken[policyNo], nil
}

func (m *mockPolicyRepo) List(ctx context.Context, offset, limit int) ([]*models.IssuedPolicy, int64, error) {
	return m.stored, int64(len(m.stored)), nil
}

func (m *mockPolicyRepo) GetByHolderEmail(ctx context.Context, email string) ([]*models.IssuedPolicy, error) {
	var out []*models.IssuedPolicy
	for _, p := range m.stored {
		if p.Holder.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPolicyRepo) ExpireDue(ctx context.Context, asOf time.Time) (int64, error) {
	if m.expireErr != nil {
		return 0, m.expireErr
	}
	m.lastSweepAsOf = asOf
	n := m.dueForExpiry
	m.dueForExpiry = 0
	return n, nil
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func validIssueInput() *IssuePolicyInput {
	return &IssuePolicyInput{
		PolicyName: "Standard Coverage",
		Price:      "₹4,500",
		Holder: HolderInput{
			Name:          "Arjun Mehta",
			Email:         "arjun@example.com",
			ContactNumber: "9876543210",
		},
		Vehicle: VehicleInput{
			Type:   "Car",
			Number: "TN01AB1234",
			Model:  "Swift VXI",
		},
		Payment: PaymentInput{
			CardNumber: "4111111111111111",
			Expiry:     "04/29",
			CVV:        "123",
		},
	}
}

var policyNoFormat = regexp.MustCompile(`^POL[A-Z0-9]{8}$`)

func TestIssueDerivesFields(t *testing.T) {
	repo := &mockPolicyRepo{}
	svc := NewPolicyService(repo)
	svc.now = fixedNow(time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC))

	policy, err := svc.Issue(context.Background(), validIssueInput())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if policy.PremiumAmount != 4500 {
		t.Errorf("premium = %v, want 4500", policy.PremiumAmount)
	}
	if policy.CoverageAmount != 54000 {
		t.Errorf("coverage = %v, want 54000", policy.CoverageAmount)
	}
	if got, want := policy.EndDate, time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("endDate = %v, want %v", got, want)
	}
	if policy.Status != models.PolicyStatusActive {
		t.Errorf("status = %q, want %q", policy.Status, models.PolicyStatusActive)
	}
	if !policyNoFormat.MatchString(policy.PolicyNo) {
		t.Errorf("policy number %q does not match POL + 8 uppercase alphanumerics", policy.PolicyNo)
	}
	if repo.createCalls != 1 {
		t.Errorf("createCalls = %d, want 1", repo.createCalls)
	}
}

func TestIssueLeapDayEndDate(t *testing.T) {
	repo := &mockPolicyRepo{}
	svc := NewPolicyService(repo)
	svc.now = fixedNow(time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC))

	input := validIssueInput()
	input.Payment.Expiry = "04/27"

	policy, err := svc.Issue(context.Background(), input)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	want := time.Date(2025, 2, 28, 9, 0, 0, 0, time.UTC)
	if !policy.EndDate.Equal(want) {
		t.Errorf("endDate = %v, want %v", policy.EndDate, want)
	}
}

func TestIssueRejectsInvalidPayment(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*IssuePolicyInput)
		field    string
	}{
		{
			name:   "15 digit card number",
			mutate: func(in *IssuePolicyInput) { in.Payment.CardNumber = "411111111111111" },
			field:  "cardNumber",
		},
		{
			name:   "card number with spaces",
			mutate: func(in *IssuePolicyInput) { in.Payment.CardNumber = "4111 1111 1111 1111" },
			field:  "cardNumber",
		},
		{
			name:   "expired card",
			mutate: func(in *IssuePolicyInput) { in.Payment.Expiry = "01/20" },
			field:  "expiry",
		},
		{
			name:   "expiry in current month",
			mutate: func(in *IssuePolicyInput) { in.Payment.Expiry = "03/25" },
			field:  "expiry",
		},
		{
			name:   "expiry month 13",
			mutate: func(in *IssuePolicyInput) { in.Payment.Expiry = "13/29" },
			field:  "expiry",
		},
		{
			name:   "two digit cvv",
			mutate: func(in *IssuePolicyInput) { in.Payment.CVV = "12" },
			field:  "cvv",
		},
		{
			name:   "missing holder email",
			mutate: func(in *IssuePolicyInput) { in.Holder.Email = "" },
			field:  "email",
		},
		{
			name:   "malformed holder email",
			mutate: func(in *IssuePolicyInput) { in.Holder.Email = "not-an-email" },
			field:  "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockPolicyRepo{}
			svc := NewPolicyService(repo)
			svc.now = fixedNow(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

			input := validIssueInput()
			tt.mutate(input)

			_, err := svc.Issue(context.Background(), input)

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Errorf("expected error keyed to %q, fields = %v", tt.field, verr.Fields)
			}
			if repo.createCalls != 0 {
				t.Errorf("store was touched on invalid input: createCalls = %d", repo.createCalls)
			}
		})
	}
}

func TestIssueMalformedPrice(t *testing.T) {
	repo := &mockPolicyRepo{}
	svc := NewPolicyService(repo)
	svc.now = fixedNow(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

	input := validIssueInput()
	input.Price = "Contact us"

	_, err := svc.Issue(context.Background(), input)
	if !errors.Is(err, domain.ErrMalformedPrice) {
		t.Fatalf("expected ErrMalformedPrice, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Errorf("store was touched on malformed price: createCalls = %d", repo.createCalls)
	}
}

func TestIssueRetriesOnPolicyNoCollision(t *testing.T) {
	repo := &mockPolicyRepo{
		createErrs: []error{gorm.ErrDuplicatedKey},
	}
	svc := NewPolicyService(repo)
	svc.now = fixedNow(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

	policy, err := svc.Issue(context.Background(), validIssueInput())
	if err != nil {
		t.Fatalf("Issue returned error after collision: %v", err)
	}
	if repo.createCalls != 2 {
		t.Errorf("createCalls = %d, want 2 (one collision, one success)", repo.createCalls)
	}
	if !policyNoFormat.MatchString(policy.PolicyNo) {
		t.Errorf("regenerated policy number %q malformed", policy.PolicyNo)
	}
}

func TestIssueSequentialPolicyNumbersUnique(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 10000 issuance loop in short mode")
	}

	const n = 10000

	repo := &mockPolicyRepo{}
	svc := NewPolicyService(repo)
	svc.now = fixedNow(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		policy, err := svc.Issue(context.Background(), validIssueInput())
		if err != nil {
			t.Fatalf("issuance %d: %v", i, err)
		}
		if !policyNoFormat.MatchString(policy.PolicyNo) {
			t.Fatalf("issuance %d: policy number %q malformed", i, policy.PolicyNo)
		}
		if seen[policy.PolicyNo] {
			t.Fatalf("issuance %d: duplicate policy number %q", i, policy.PolicyNo)
		}
		seen[policy.PolicyNo] = true
	}

	if repo.createCalls != n {
		t.Errorf("createCalls = %d, want %d", repo.createCalls, n)
	}
}

func TestIssuePersistenceFailure(t *testing.T) {
	repo := &mockPolicyRepo{
		createErrs: []error{errors.New("connection reset")},
	}
	svc := NewPolicyService(repo)
	svc.now = fixedNow(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

	_, err := svc.Issue(context.Background(), validIssueInput())
	if !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}

func TestSweepExpiredIsIdempotent(t *testing.T) {
	repo := &mockPolicyRepo{dueForExpiry: 3}
	svc := NewPolicyService(repo)

	asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	first, err := svc.SweepExpired(context.Background(), asOf)
	if err != nil {
		t.Fatalf("first sweep: %v", err)
	}
	if first != 3 {
		t.Errorf("first sweep expired %d, want 3", first)
	}

	second, err := svc.SweepExpired(context.Background(), asOf)
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if second != 0 {
		t.Errorf("second sweep expired %d, want 0", second)
	}
}

func TestSweepExpiredDefaultsToNow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &mockPolicyRepo{dueForExpiry: 1}
	svc := NewPolicyService(repo)
	svc.now = fixedNow(now)

	if _, err := svc.SweepExpired(context.Background(), time.Time{}); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if !repo.lastSweepAsOf.Equal(now) {
		t.Errorf("sweep asOf = %v, want %v", repo.lastSweepAsOf, now)
	}
}

func TestGetByPolicyNoNotFound(t *testing.T) {
	svc := NewPolicyService(&mockPolicyRepo{})

	_, err := svc.GetByPolicyNo(context.Background(), "POLMISSING1")
	if !errors.Is(err, domain.ErrPolicyNotFound) {
		t.Fatalf("expected ErrPolicyNotFound, got %v", err)
	}
}
