package rest

import "testing"

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := hashPassword("testpassword")
	if err != nil {
		t.Fatalf("hashPassword returned error %v", err)
	}
	if hash == "testpassword" {
		t.Fatal("hash must not equal the plain password")
	}

	if err := verifyPassword(hash, "testpassword"); err != nil {
		t.Errorf("verifyPassword rejected the correct password: %v", err)
	}
	if err := verifyPassword(hash, "wrongpassword"); err == nil {
		t.Error("verifyPassword accepted a wrong password")
	}
}

func TestPasswordHashesAreSalted(t *testing.T) {
	first, err := hashPassword("testpassword")
	if err != nil {
		t.Fatalf("hashPassword returned error %v", err)
	}
	second, err := hashPassword("testpassword")
	if err != nil {
		t.Fatalf("hashPassword returned error %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password should differ")
	}
}
