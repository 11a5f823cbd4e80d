package utils

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateID(t *testing.T) {
	at := time.Date(2024, 3, 15, 9, 30, 45, 0, time.Local)

	id := GenerateID("#", at)

	if !strings.HasPrefix(id, "#150324093045") {
		t.Errorf("GenerateID() = %q, want prefix #150324093045", id)
	}
	if len(id) != len("#150324093045")+6 {
		t.Errorf("GenerateID() length = %d, want %d", len(id), len("#150324093045")+6)
	}
}

func TestGenerateIDCollisionResistant(t *testing.T) {
	at := time.Now()
	seen := map[string]bool{}

	for i := 0; i < 100; i++ {
		id := GenerateID("PAY", at)
		if seen[id] {
			t.Fatalf("duplicate id %q pada timestamp yang sama", id)
		}
		seen[id] = true
	}
}

func TestRandomIDLength(t *testing.T) {
	if got := len(RandomID(10)); got != 10 {
		t.Errorf("RandomID(10) length = %d", got)
	}
	if got := len(RandomID(100)); got != 32 {
		t.Errorf("RandomID(100) length = %d, want 32 (cap uuid)", got)
	}
}
