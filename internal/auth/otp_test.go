package auth

import (
	"testing"
	"time"
)

func TestOTPIssueAndVerify(t *testing.T) {
	s := NewOTPStore(5 * time.Minute)
	code, err := s.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if len(code) != otpDigits {
		t.Fatalf("code %q has wrong length", code)
	}
	if !s.Verify("u1", code) {
		t.Fatal("valid code rejected")
	}
	// Codes are single-use.
	if s.Verify("u1", code) {
		t.Fatal("code verified twice")
	}
}

func TestOTPWrongCodeKeepsEntry(t *testing.T) {
	s := NewOTPStore(5 * time.Minute)
	code, _ := s.Issue("u1")
	if s.Verify("u1", "000000") && code != "000000" {
		t.Fatal("wrong code accepted")
	}
	if !s.Verify("u1", code) {
		t.Fatal("correct code rejected after a wrong attempt")
	}
}

func TestOTPExpiry(t *testing.T) {
	s := NewOTPStore(5 * time.Minute)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	code, _ := s.Issue("u1")

	s.now = func() time.Time { return base.Add(6 * time.Minute) }
	if s.Verify("u1", code) {
		t.Fatal("expired code accepted")
	}
}

func TestOTPSweepEvicts(t *testing.T) {
	s := NewOTPStore(time.Minute)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	_, _ = s.Issue("u1")
	_, _ = s.Issue("u2")

	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	s.evictExpired()

	s.mu.Lock()
	n := len(s.codes)
	s.mu.Unlock()
	if n != 0 {
		t.Fatalf("expected empty store after sweep, have %d entries", n)
	}
}

func TestOTPReissueReplaces(t *testing.T) {
	s := NewOTPStore(5 * time.Minute)
	first, _ := s.Issue("u1")
	second, _ := s.Issue("u1")
	if first != second && s.Verify("u1", first) {
		t.Fatal("stale code accepted after reissue")
	}
	if !s.Verify("u1", second) {
		t.Fatal("fresh code rejected")
	}
}
