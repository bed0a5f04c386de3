package services

import (
	"testing"

	"github.com/AmanVarshney01/gla-project-tracker/internal/config"
	"github.com/AmanVarshney01/gla-project-tracker/internal/models"
	"github.com/AmanVarshney01/gla-project-tracker/internal/utils"
)

func init() {
	utils.SetJWTSecret("test-secret-for-service-testing")
}

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:            "test-secret-for-service-testing",
		ExpireHour:        24,
		RefreshExpireHour: 168,
	}
}

func TestRegister(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testJWTConfig())

	user, err := svc.Register(&RegisterRequest{
		Name:     "Alice",
		Email:    " Alice@Example.com ",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email = %q, want normalized %q", user.Email, "alice@example.com")
	}
	if user.Password == "password123" {
		t.Error("password stored in plaintext")
	}
	if !user.IsActive {
		t.Error("new account should be active")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testJWTConfig())

	req := &RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	_, err := svc.Register(req)
	assertAppError(t, err, 409)
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testJWTConfig())

	if _, err := svc.Register(&RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "password123",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	result, err := svc.Login(&LoginRequest{
		Email: "alice@example.com", Password: "password123",
	}, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("access token missing")
	}
	if result.RefreshToken == "" {
		t.Error("refresh token missing")
	}

	claims, err := utils.ParseToken(result.AccessToken)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("token email = %q", claims.Email)
	}

	// The refresh token is stored hashed, never verbatim
	var stored models.RefreshToken
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("refresh token not persisted: %v", err)
	}
	if stored.TokenHash == result.RefreshToken {
		t.Error("refresh token stored unhashed")
	}

	var user models.User
	if err := db.Where("email = ?", "alice@example.com").First(&user).Error; err != nil {
		t.Fatalf("user lookup failed: %v", err)
	}
	if user.LastLogin == nil {
		t.Error("last_login not recorded")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testJWTConfig())

	if _, err := svc.Register(&RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "password123",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := svc.Login(&LoginRequest{
		Email: "alice@example.com", Password: "wrong",
	}, "127.0.0.1", "test-agent")
	assertAppError(t, err, 401)
}

func TestLogin_UnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testJWTConfig())

	_, err := svc.Login(&LoginRequest{
		Email: "ghost@example.com", Password: "password123",
	}, "127.0.0.1", "test-agent")
	assertAppError(t, err, 401)
}

func TestLogin_DisabledAccount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testJWTConfig())

	user, err := svc.Register(&RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	db.Model(user).Update("is_active", false)

	_, err = svc.Login(&LoginRequest{
		Email: "alice@example.com", Password: "password123",
	}, "127.0.0.1", "test-agent")
	assertAppError(t, err, 401)
}

func TestRefresh_RotatesToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testJWTConfig())

	if _, err := svc.Register(&RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "password123",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	login, err := svc.Login(&LoginRequest{
		Email: "alice@example.com", Password: "password123",
	}, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	refreshed, err := svc.Refresh(login.RefreshToken, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if refreshed.RefreshToken == login.RefreshToken {
		t.Error("refresh token was not rotated")
	}

	// The spent token is revoked and cannot be replayed
	_, err = svc.Refresh(login.RefreshToken, "127.0.0.1", "test-agent")
	assertAppError(t, err, 401)

	// The rotated token still works
	if _, err := svc.Refresh(refreshed.RefreshToken, "127.0.0.1", "test-agent"); err != nil {
		t.Fatalf("rotated token rejected: %v", err)
	}
}

func TestRefresh_InvalidToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testJWTConfig())

	_, err := svc.Refresh("deadbeef", "127.0.0.1", "test-agent")
	assertAppError(t, err, 401)

	_, err = svc.Refresh("", "127.0.0.1", "test-agent")
	assertAppError(t, err, 401)
}

func TestRevoke(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testJWTConfig())

	if _, err := svc.Register(&RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "password123",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	login, err := svc.Login(&LoginRequest{
		Email: "alice@example.com", Password: "password123",
	}, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := svc.Revoke(login.RefreshToken); err != nil {
		t.Fatalf("Revoke failed: %v", err)
	}

	_, err = svc.Refresh(login.RefreshToken, "127.0.0.1", "test-agent")
	assertAppError(t, err, 401)
}

func TestCleanupExpiredTokens(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testJWTConfig())

	user := models.User{Name: "Alice", Email: "alice@example.com", Password: "x", IsActive: true}
	db.Create(&user)

	expired := models.RefreshToken{
		UserID:    user.ID,
		TokenHash: "expired-hash",
		ExpiresAt: mustDate(t, "2020-01-01"),
	}
	live := models.RefreshToken{
		UserID:    user.ID,
		TokenHash: "live-hash",
		ExpiresAt: mustDate(t, "2999-01-01"),
	}
	db.Create(&expired)
	db.Create(&live)

	removed, err := svc.CleanupExpiredTokens()
	if err != nil {
		t.Fatalf("CleanupExpiredTokens failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	var count int64
	db.Model(&models.RefreshToken{}).Count(&count)
	if count != 1 {
		t.Errorf("remaining tokens = %d, want 1", count)
	}
}
