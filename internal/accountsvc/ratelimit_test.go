package accountsvc_test

import (
	"testing"

	"github.com/pmendys/course-match/internal/accountsvc"
)

func TestTokenBucket_AllowsUpToCapacity(t *testing.T) {
	tb := accountsvc.NewTokenBucket(0.001, 3)

	for i := 0; i < 3; i++ {
		if !tb.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if tb.Allow("1.2.3.4") {
		t.Fatal("request over capacity should be rejected")
	}
}

func TestTokenBucket_KeysAreIndependent(t *testing.T) {
	tb := accountsvc.NewTokenBucket(0.001, 1)

	if !tb.Allow("1.2.3.4") {
		t.Fatal("first key should be allowed")
	}
	if tb.Allow("1.2.3.4") {
		t.Fatal("first key should be exhausted")
	}
	if !tb.Allow("5.6.7.8") {
		t.Fatal("second key has its own bucket")
	}
}
