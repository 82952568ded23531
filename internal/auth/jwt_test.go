package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateToken(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", "pizzeria", "pizzeria")

	token, err := a.GenerateToken(42, []string{"diner"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if ExtractFragment(token) == "" {
		t.Fatalf("token %q does not yield a usable fragment", token)
	}

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not MapClaims")
	}
	if sub, _ := claims["sub"].(float64); int64(sub) != 42 {
		t.Errorf("sub = %v, want 42", claims["sub"])
	}
	if _, hasExp := claims["exp"]; hasExp {
		t.Error("token should not carry an exp claim")
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Error("token should carry a jti")
	}
}

func TestGenerateTokenFragmentsDiffer(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", "pizzeria", "pizzeria")

	t1, err := a.GenerateToken(1, []string{"diner"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	t2, err := a.GenerateToken(1, []string{"diner"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	// the jti makes every mint unique, so concurrent logins by the same
	// user get independent session markers
	if ExtractFragment(t1) == ExtractFragment(t2) {
		t.Error("two tokens for the same user share a fragment")
	}
}
