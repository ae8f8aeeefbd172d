package util

import "testing"

func TestHashNamespaceKey(t *testing.T) {
	id := "subject-12345"
	got := HashNamespaceKey(id)
	if got != HashNamespaceKey(id) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}
