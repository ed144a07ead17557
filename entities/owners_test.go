package entities_test

import (
	"testing"

	"sorteat-backend/entities"
)

func TestParseOwners(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "json array", raw: `["a","b"]`, want: []string{"a", "b"}},
		{name: "json string", raw: `"a"`, want: []string{"a"}},
		{name: "legacy bare string", raw: "alice", want: []string{"alice"}},
		{name: "shared sentinel", raw: `["shared"]`, want: []string{"shared"}},
		{name: "empty", raw: "", want: nil},
		{name: "whitespace only", raw: "   ", want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := entities.ParseOwners(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestParseOwnersRoundTrip(t *testing.T) {
	t.Parallel()

	owners := []string{"a", "b", "c"}
	got := entities.ParseOwners(entities.EncodeOwners(owners))
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("expected %v, got %v", owners, got)
	}
}

func TestIsShared(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		owners        []string
		householdSize int
		want          bool
	}{
		{name: "sentinel", owners: []string{"shared"}, householdSize: 0, want: true},
		{name: "sentinel mixed case", owners: []string{"Shared"}, householdSize: 0, want: true},
		{name: "all members listed", owners: []string{"a", "b"}, householdSize: 2, want: true},
		{name: "duplicates not counted twice", owners: []string{"a", "a"}, householdSize: 2, want: false},
		{name: "partial ownership", owners: []string{"a"}, householdSize: 2, want: false},
		{name: "unknown household size", owners: []string{"a", "b"}, householdSize: 0, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := entities.IsShared(tt.owners, tt.householdSize); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
