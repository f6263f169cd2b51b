package main

import (
	"testing"

	"github.com/pixeldare/darekit/pkg/challenge"
)

func TestSelectChallengeDefaultsToFirstEntry(t *testing.T) {
	catalog := challenge.Defaults()

	ch, err := selectChallenge(catalog, "", false)
	if err != nil {
		t.Fatalf("selectChallenge: %v", err)
	}
	if ch.Title != catalog.Challenges[0].Title {
		t.Fatalf("title = %q, want first catalog entry %q", ch.Title, catalog.Challenges[0].Title)
	}
}

func TestSelectChallengeByTitle(t *testing.T) {
	catalog := challenge.Defaults()
	want := catalog.Challenges[1].Title

	ch, err := selectChallenge(catalog, want, false)
	if err != nil {
		t.Fatalf("selectChallenge: %v", err)
	}
	if ch.Title != want {
		t.Fatalf("title = %q, want %q", ch.Title, want)
	}

	if _, err := selectChallenge(catalog, "No Such Challenge", false); err == nil {
		t.Fatal("selectChallenge accepted an unknown title")
	}
}

func TestSelectChallengeEmptyCatalog(t *testing.T) {
	if _, err := selectChallenge(challenge.Catalog{}, "", false); err == nil {
		t.Fatal("selectChallenge accepted an empty catalog")
	}
}
