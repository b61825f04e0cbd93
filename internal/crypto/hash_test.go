package crypto

import (
	"strings"
	"testing"
)

// cheap parameters keep the test suite fast; the format is the same.
func testHasher() *Hasher {
	return NewHasher(HashParams{Memory: 1024, Iterations: 1, Parallelism: 1})
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("HashPassword() expected 6 parts, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("HashPassword() algorithm = %q, want %q", parts[1], "argon2id")
	}
	if parts[2] != "v=19" {
		t.Errorf("HashPassword() version = %q, want %q", parts[2], "v=19")
	}
	if parts[3] != "m=65536,t=3,p=2" {
		t.Errorf("HashPassword() params = %q, want %q", parts[3], "m=65536,t=3,p=2")
	}
}

func TestHasherEncodesItsParams(t *testing.T) {
	hash, err := testHasher().Hash("pw")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}
	if !strings.Contains(hash, "$m=1024,t=1,p=1$") {
		t.Errorf("Hash() = %q, want cheap params encoded", hash)
	}
}

func TestVerifyCorrectAndWrong(t *testing.T) {
	h := testHasher()
	hash, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	match, err := h.Verify("pw123", hash)
	if err != nil || !match {
		t.Errorf("Verify(correct) = %v, %v; want true, nil", match, err)
	}

	match, err = h.Verify("wrongpw", hash)
	if err != nil || match {
		t.Errorf("Verify(wrong) = %v, %v; want false, nil", match, err)
	}
}

func TestVerifyUsesStoredParams(t *testing.T) {
	hash, err := testHasher().Hash("pw123")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	// A hasher with different cost must still verify older hashes.
	other := NewHasher(HashParams{Memory: 2048, Iterations: 2, Parallelism: 1})
	match, err := other.Verify("pw123", hash)
	if err != nil || !match {
		t.Errorf("Verify() = %v, %v; want true, nil", match, err)
	}
}

func TestHashProducesDifferentHashes(t *testing.T) {
	h := testHasher()
	hash1, _ := h.Hash("same-password")
	hash2, _ := h.Hash("same-password")

	if hash1 == hash2 {
		t.Error("Hash() produced identical hashes for same password (salt should differ)")
	}
}

func TestVerifyInvalidHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
		want error
	}{
		{"garbage", "invalid-hash-format", ErrInvalidHashFormat},
		{"wrong algorithm", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA", ErrInvalidHashFormat},
		{"wrong version", "$argon2id$v=16$m=1,t=1,p=1$c2FsdA$aGFzaA", ErrIncompatibleVersion},
		{"bad params", "$argon2id$v=19$x$c2FsdA$aGFzaA", ErrInvalidHashFormat},
		{"bad salt", "$argon2id$v=19$m=1,t=1,p=1$!!!$aGFzaA", ErrInvalidHashFormat},
		{"empty key", "$argon2id$v=19$m=1,t=1,p=1$c2FsdA$", ErrInvalidHashFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testHasher().Verify("password", tt.hash)
			if err != tt.want {
				t.Errorf("Verify() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewHasherFillsDefaults(t *testing.T) {
	h := NewHasher(HashParams{})
	if h.params != DefaultHashParams() {
		t.Errorf("NewHasher(zero) params = %+v, want defaults", h.params)
	}
}
