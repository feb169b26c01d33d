package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"motorcover/internal/adapters/persistence/models"
	"motorcover/internal/config"
	"motorcover/internal/pkg/password"

	"gorm.io/gorm"
)

type mockUserRepo struct {
	users       map[string]*models.User
	createCalls int
	createErr   error
	nextID      uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User), nextID: 1}
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.users[user.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.Email] = user
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := m.users[email]
	return ok, nil
}

func (m *mockUserRepo) List(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	var out []*models.User
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

type mockTokenRepo struct {
	tokens map[string]*models.RefreshToken
	nextID uint
}

func newMockTokenRepo() *mockTokenRepo {
	return &mockTokenRepo{tokens: make(map[string]*models.RefreshToken), nextID: 1}
}

func (m *mockTokenRepo) Create(ctx context.Context, token *models.RefreshToken) error {
	token.ID = m.nextID
	m.nextID++
	m.tokens[token.TokenHash] = token
	return nil
}

func (m *mockTokenRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	if t, ok := m.tokens[tokenHash]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTokenRepo) Revoke(ctx context.Context, id uint) error {
	now := time.Now()
	for _, t := range m.tokens {
		if t.ID == id {
			t.RevokedAt = &now
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockTokenRepo) RevokeByTokenHash(ctx context.Context, tokenHash string) error {
	if t, ok := m.tokens[tokenHash]; ok {
		now := time.Now()
		t.RevokedAt = &now
	}
	return nil
}

func (m *mockTokenRepo) RevokeAllByUserID(ctx context.Context, userID uint) error {
	now := time.Now()
	for _, t := range m.tokens {
		if t.UserID == userID {
			t.RevokedAt = &now
		}
	}
	return nil
}

func (m *mockTokenRepo) DeleteExpired(ctx context.Context) error {
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
}

func validRegisterInput() *RegisterInput {
	return &RegisterInput{
		Name:        "Arjun Mehta",
		Email:       "arjun@example.com",
		Password:    "s3cret-pass",
		PhoneNumber: "9876543210",
		Age:         32,
		DOB:         "1993-06-15",
	}
}

func TestRegisterSuccess(t *testing.T) {
	userRepo := newMockUserRepo()
	svc := NewAuthService(userRepo, newMockTokenRepo(), testConfig())

	resp, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if resp.User.Role != "USER" {
		t.Errorf("role = %q, want USER", resp.User.Role)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}

	stored := userRepo.users["arjun@example.com"]
	if stored == nil {
		t.Fatal("user was not persisted")
	}
	if stored.Password == "s3cret-pass" {
		t.Error("password stored in plaintext")
	}
	if !password.Verify("s3cret-pass", stored.Password) {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestRegisterDuplicateEmailPerformsNoWrite(t *testing.T) {
	userRepo := newMockUserRepo()
	svc := NewAuthService(userRepo, newMockTokenRepo(), testConfig())

	if _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	createsAfterFirst := userRepo.createCalls

	_, err := svc.Register(context.Background(), validRegisterInput())
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if userRepo.createCalls != createsAfterFirst {
		t.Errorf("duplicate registration reached the store: createCalls = %d", userRepo.createCalls)
	}
}

func TestRegisterDuplicateRaceMapsToEmailTaken(t *testing.T) {
	userRepo := newMockUserRepo()
	userRepo.createErr = gorm.ErrDuplicatedKey
	svc := NewAuthService(userRepo, newMockTokenRepo(), testConfig())

	_, err := svc.Register(context.Background(), validRegisterInput())
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken on insert race, got %v", err)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(), newMockTokenRepo(), testConfig())

	input := validRegisterInput()
	input.Password = "short"

	_, err := svc.Register(context.Background(), input)
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestLoginFailureIsUniform(t *testing.T) {
	userRepo := newMockUserRepo()
	svc := NewAuthService(userRepo, newMockTokenRepo(), testConfig())

	if _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("registration: %v", err)
	}

	_, unknownEmailErr := svc.Login(context.Background(), &LoginInput{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})
	_, wrongPasswordErr := svc.Login(context.Background(), &LoginInput{
		Email:    "arjun@example.com",
		Password: "wrong-pass",
	})

	if !errors.Is(unknownEmailErr, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmailErr)
	}
	if !errors.Is(wrongPasswordErr, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPasswordErr)
	}
	if unknownEmailErr.Error() != wrongPasswordErr.Error() {
		t.Error("unknown email and wrong password produce distinguishable errors")
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(), newMockTokenRepo(), testConfig())

	if _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("registration: %v", err)
	}

	resp, err := svc.Login(context.Background(), &LoginInput{
		Email:    "arjun@example.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.User.Email != "arjun@example.com" {
		t.Errorf("user email = %q", resp.User.Email)
	}
	if resp.AccessToken == "" {
		t.Error("expected an access token")
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	tokenRepo := newMockTokenRepo()
	svc := NewAuthService(newMockUserRepo(), tokenRepo, testConfig())

	reg, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("registration: %v", err)
	}

	refreshed, err := svc.RefreshToken(context.Background(), reg.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.RefreshToken == reg.RefreshToken {
		t.Error("refresh token was not rotated")
	}

	// The presented token is single-use
	if _, err := svc.RefreshToken(context.Background(), reg.RefreshToken); !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked on token reuse, got %v", err)
	}
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	tokenRepo := newMockTokenRepo()
	svc := NewAuthService(newMockUserRepo(), tokenRepo, testConfig())

	reg, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("registration: %v", err)
	}

	if err := svc.Logout(context.Background(), reg.RefreshToken); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, err := svc.RefreshToken(context.Background(), reg.RefreshToken); !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked after logout, got %v", err)
	}
}
