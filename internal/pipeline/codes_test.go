package pipeline

import "testing"

func TestGenerateSequence(t *testing.T) {
	codes := NewCodeRegistry()
	if got := codes.Generate("NC"); got != "NC-0001" {
		t.Fatalf("got %s", got)
	}
	if got := codes.Generate("NC"); got != "NC-0002" {
		t.Fatalf("got %s", got)
	}
	if got := codes.Generate("XX"); got != "XX-0001" {
		t.Fatalf("prefixes share no counter: got %s", got)
	}
}

func TestClaimSuffixesDuplicates(t *testing.T) {
	codes := NewCodeRegistry()
	for i, want := range []string{"A", "A-1", "A-2"} {
		if got := codes.Claim("A"); got != want {
			t.Fatalf("claim %d: got %s want %s", i, got, want)
		}
	}
}

func TestClaimSkipsTakenSuffix(t *testing.T) {
	codes := NewCodeRegistry()
	if got := codes.Claim("A-1"); got != "A-1" {
		t.Fatalf("got %s", got)
	}
	if got := codes.Claim("A"); got != "A" {
		t.Fatalf("got %s", got)
	}
	if got := codes.Claim("A"); got != "A-2" {
		t.Fatalf("A-1 is taken, got %s", got)
	}
}

func TestGeneratedCodeCanStillCollide(t *testing.T) {
	codes := NewCodeRegistry()
	if got := codes.Claim("NC-0001"); got != "NC-0001" {
		t.Fatalf("got %s", got)
	}
	if got := codes.Claim(codes.Generate("NC")); got != "NC-0001-1" {
		t.Fatalf("got %s", got)
	}
}
