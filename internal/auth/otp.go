package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"math/big"
	"sync"
	"time"

	"go.uber.org/zap"
)

const otpDigits = 6

type otpEntry struct {
	code      string
	expiresAt time.Time
}

// OTPStore is keyed ephemeral storage for one-time login codes. Entries
// expire after the configured TTL; a background sweep evicts stale entries so
// the map does not grow with abandoned requests.
type OTPStore struct {
	mu    sync.Mutex
	codes map[string]otpEntry
	ttl   time.Duration
	now   func() time.Time
}

func NewOTPStore(ttl time.Duration) *OTPStore {
	return &OTPStore{
		codes: map[string]otpEntry{},
		ttl:   ttl,
		now:   time.Now,
	}
}

// Issue creates a fresh code for the user, replacing any outstanding one.
func (s *OTPStore) Issue(userID string) (string, error) {
	code, err := randomCode(otpDigits)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.codes[userID] = otpEntry{code: code, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return code, nil
}

// Verify consumes the user's outstanding code. A code verifies at most once;
// expired or unknown codes fail.
func (s *OTPStore) Verify(userID, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.codes[userID]
	if !ok || s.now().After(e.expiresAt) {
		delete(s.codes, userID)
		return false
	}
	if subtle.ConstantTimeCompare([]byte(e.code), []byte(code)) != 1 {
		return false
	}
	delete(s.codes, userID)
	return true
}

// Sweep evicts expired entries every interval until ctx is done. Run it as a
// goroutine next to the HTTP server.
func (s *OTPStore) Sweep(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.evictExpired()
		}
	}
}

func (s *OTPStore) evictExpired() {
	now := s.now()
	s.mu.Lock()
	removed := 0
	for k, e := range s.codes {
		if now.After(e.expiresAt) {
			delete(s.codes, k)
			removed++
		}
	}
	s.mu.Unlock()
	if removed > 0 {
		zap.L().Debug("otp sweep", zap.Int("evicted", removed))
	}
}

func randomCode(digits int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	out := n.String()
	for len(out) < digits {
		out = "0" + out
	}
	return out, nil
}
