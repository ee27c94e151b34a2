package main

import "testing"

func TestMatchCORSOrigin_Exact(t *testing.T) {
	patterns := []string{"https://sriastroveda.com"}

	if !matchCORSOrigin("https://sriastroveda.com", patterns) {
		t.Fatalf("expected exact origin match to be allowed")
	}

	if matchCORSOrigin("https://shop.sriastroveda.com", patterns) {
		t.Fatalf("did not expect different subdomain to be allowed for exact pattern")
	}
}

func TestMatchCORSOrigin_Star(t *testing.T) {
	patterns := []string{"*"}

	for _, origin := range []string{
		"https://sriastroveda.com",
		"https://example.com",
		"http://localhost:3000",
	} {
		if !matchCORSOrigin(origin, patterns) {
			t.Fatalf("expected '*' pattern to allow origin %q", origin)
		}
	}
}

func TestMatchCORSOrigin_WildcardSubdomain(t *testing.T) {
	patterns := []string{"https://*.sriastroveda.com"}

	for _, origin := range []string{
		"https://www.sriastroveda.com",
		"https://shop.in.sriastroveda.com",
	} {
		if !matchCORSOrigin(origin, patterns) {
			t.Fatalf("expected wildcard pattern to allow origin %q", origin)
		}
	}

	if matchCORSOrigin("https://sriastroveda.com", patterns) {
		t.Fatalf("did not expect bare domain to be allowed by wildcard pattern")
	}

	if matchCORSOrigin("https://example.com", patterns) {
		t.Fatalf("did not expect different domain to be allowed by wildcard pattern")
	}

	if matchCORSOrigin("http://www.sriastroveda.com", patterns) {
		t.Fatalf("did not expect different scheme to be allowed by wildcard pattern")
	}
}

func TestMatchCORSOrigin_InvalidPatternDoesNotPanic(t *testing.T) {
	patterns := []string{"https://%gh&%ij"}

	if matchCORSOrigin("https://origin.example.com", patterns) {
		t.Fatalf("did not expect invalid URL pattern to match origin")
	}
}

func TestMatchCORSOrigin_LocalhostWithPort(t *testing.T) {
	patterns := []string{"http://localhost:3000", "http://localhost:3001"}

	if !matchCORSOrigin("http://localhost:3001", patterns) {
		t.Fatalf("expected listed localhost origin to be allowed")
	}

	if matchCORSOrigin("http://localhost:4000", patterns) {
		t.Fatalf("did not expect unlisted port to be allowed")
	}
}
