package jwt

import "testing"

const testSecret = "test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("emp-1", "ana@corp.com", testSecret, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ValidateAccessToken(token, testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if claims.EmployeeID != "emp-1" {
		t.Errorf("expected employee id emp-1, got %s", claims.EmployeeID)
	}
	if claims.Email != "ana@corp.com" {
		t.Errorf("expected email ana@corp.com, got %s", claims.Email)
	}
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("emp-1", "ana@corp.com", testSecret, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := ValidateAccessToken(token, "other-secret"); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateAccessToken_Expired(t *testing.T) {
	token, err := GenerateAccessToken("emp-1", "ana@corp.com", testSecret, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := ValidateAccessToken(token, testSecret); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken("emp-1", "tok-123", testSecret, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ValidateRefreshToken(token, testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.TokenID != "tok-123" {
		t.Errorf("expected token id tok-123, got %s", claims.TokenID)
	}
}
