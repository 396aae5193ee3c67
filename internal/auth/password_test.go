package auth

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw123456")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "pw123456" {
		t.Fatal("HashPassword returned the plaintext")
	}

	if !VerifyPassword("pw123456", hash) {
		t.Fatal("VerifyPassword rejected the correct password")
	}
	if VerifyPassword("wrong", hash) {
		t.Fatal("VerifyPassword accepted a wrong password")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("pw123456")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	h2, err := HashPassword("pw123456")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password are identical")
	}
}
