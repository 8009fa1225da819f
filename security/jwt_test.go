package security

import (
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"

	"direct-chat-api/apperror"
	"direct-chat-api/config/common"
	"direct-chat-api/entity"
)

func testConfig(secret string) *common.Config {
	v := viper.New()
	v.Set("JWT_SECRET", secret)
	return &common.Config{Viper: v}
}

func TestGenerateAndAuthenticate(t *testing.T) {
	jwt := NewJWT(testConfig("unit-test-secret"))
	user := &entity.User{
		BaseEntity: entity.BaseEntity{ID: "user-1"},
		Phone:      "+5511999990000",
	}

	token, err := jwt.GenerateToken(user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := jwt.Authenticate(token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("expected user-1, got %q", claims.UserID)
	}
	if claims.Phone != "+5511999990000" {
		t.Fatalf("expected bound phone, got %q", claims.Phone)
	}
}

func TestAuthenticateMalformed(t *testing.T) {
	jwt := NewJWT(testConfig("unit-test-secret"))

	_, err := jwt.Authenticate("definitely-not-a-token")
	assertAuthError(t, err)
}

func TestAuthenticateWrongKey(t *testing.T) {
	issuer := NewJWT(testConfig("key-one"))
	verifier := NewJWT(testConfig("key-two"))

	token, err := issuer.GenerateToken(&entity.User{BaseEntity: entity.BaseEntity{ID: "u1"}})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	_, err = verifier.Authenticate(token)
	assertAuthError(t, err)
}

func TestAuthenticateExpired(t *testing.T) {
	secret := "unit-test-secret"
	jwt := NewJWT(testConfig(secret))

	expired := gojwt.NewWithClaims(gojwt.SigningMethodHS512, gojwt.MapClaims{
		"user_id": "u1",
		"phone":   "+100",
		"iat":     time.Now().Add(-48 * time.Hour).Unix(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	token, err := expired.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	_, err = jwt.Authenticate(token)
	assertAuthError(t, err)
	if err.Error() != "credential expired" {
		t.Fatalf("expected expiry message, got %q", err.Error())
	}
}

func TestMultipleTokensCoexist(t *testing.T) {
	jwt := NewJWT(testConfig("unit-test-secret"))
	user := &entity.User{BaseEntity: entity.BaseEntity{ID: "u1"}, Phone: "+100"}

	first, err := jwt.GenerateToken(user)
	if err != nil {
		t.Fatalf("generate first: %v", err)
	}
	second, err := jwt.GenerateToken(user)
	if err != nil {
		t.Fatalf("generate second: %v", err)
	}

	if _, err := jwt.Authenticate(first); err != nil {
		t.Fatalf("first token should stay valid: %v", err)
	}
	if _, err := jwt.Authenticate(second); err != nil {
		t.Fatalf("second token should be valid: %v", err)
	}
}

func assertAuthError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an authentication error")
	}
	var appErr *apperror.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperror.KindAuth {
		t.Fatalf("expected auth error, got %v", err)
	}
}
