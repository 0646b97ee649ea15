package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerator_GenerateToken(t *testing.T) {
	gen := NewGenerator("test-secret", time.Hour)

	signed, err := gen.GenerateToken(42, "alice@example.com", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if signed == "" {
		t.Fatal("token is empty")
	}

	// 生成したトークンを同じシークレットで検証する
	token, err := jwt.Parse(signed, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("generated token failed verification: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not MapClaims")
	}
	if sub, _ := claims["sub"].(float64); uint(sub) != 42 {
		t.Errorf("sub = %v, want 42", claims["sub"])
	}
	if claims["email"] != "alice@example.com" {
		t.Errorf("email = %v, want alice@example.com", claims["email"])
	}
	if claims["username"] != "alice" {
		t.Errorf("username = %v, want alice", claims["username"])
	}

	exp, _ := claims["exp"].(float64)
	iat, _ := claims["iat"].(float64)
	if exp-iat != float64(time.Hour/time.Second) {
		t.Errorf("expiration window = %v seconds, want %v", exp-iat, time.Hour/time.Second)
	}
}

func TestGenerator_GenerateToken_WrongSecretFails(t *testing.T) {
	gen := NewGenerator("correct-secret", time.Hour)

	signed, err := gen.GenerateToken(1, "a@example.com", "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = jwt.Parse(signed, func(tk *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	if err == nil {
		t.Error("verification with the wrong secret should fail")
	}
}
