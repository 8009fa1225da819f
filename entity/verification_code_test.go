package entity

import (
	"testing"
	"time"
)

func TestVerificationCodeExpiry(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	code := VerificationCode{ExpiresAt: issued.Add(10 * time.Minute)}

	if code.Expired(issued.Add(9 * time.Minute)) {
		t.Fatal("code should still be valid before expiry")
	}
	if !code.Expired(issued.Add(10 * time.Minute)) {
		t.Fatal("code must be expired at exactly the deadline, same as the lookup filter")
	}
	if !code.Expired(issued.Add(10*time.Minute + time.Second)) {
		t.Fatal("code must be expired past the deadline")
	}
}
