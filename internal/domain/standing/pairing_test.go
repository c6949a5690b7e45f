package standing

import (
	"errors"
	"testing"
)

func TestPair_AdjacentRanks(t *testing.T) {
	t.Parallel()

	ranked := []Standing{
		{PlayerID: 1, Name: "A", Wins: 1, Matches: 1},
		{PlayerID: 3, Name: "C", Wins: 1, Matches: 1},
		{PlayerID: 2, Name: "B", Wins: 0, Matches: 1},
		{PlayerID: 4, Name: "D", Wins: 0, Matches: 1},
	}

	got, err := Pair(ranked, OddPolicyError)
	if err != nil {
		t.Fatalf("Pair error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 pairings, got %d", len(got))
	}
	if got[0].Home.PlayerID != 1 || got[0].Away == nil || got[0].Away.PlayerID != 3 {
		t.Fatalf("unexpected first pairing: %+v", got[0])
	}
	if got[1].Home.PlayerID != 2 || got[1].Away == nil || got[1].Away.PlayerID != 4 {
		t.Fatalf("unexpected second pairing: %+v", got[1])
	}
	if got[0].Table != 1 || got[1].Table != 2 {
		t.Fatalf("unexpected table numbers: %d, %d", got[0].Table, got[1].Table)
	}
}

func TestPair_EveryPlayerExactlyOnce(t *testing.T) {
	t.Parallel()

	ranked := make([]Standing, 0, 10)
	for id := int64(1); id <= 10; id++ {
		ranked = append(ranked, Standing{PlayerID: id})
	}

	got, err := Pair(ranked, OddPolicyError)
	if err != nil {
		t.Fatalf("Pair error: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 pairings, got %d", len(got))
	}

	seen := make(map[int64]int)
	for _, p := range got {
		if p.Bye || p.Away == nil {
			t.Fatalf("unexpected bye in even pairing: %+v", p)
		}
		if p.Home.PlayerID == p.Away.PlayerID {
			t.Fatalf("player paired with themselves: %+v", p)
		}
		seen[p.Home.PlayerID]++
		seen[p.Away.PlayerID]++
	}
	for id := int64(1); id <= 10; id++ {
		if seen[id] != 1 {
			t.Fatalf("player %d appears %d times", id, seen[id])
		}
	}
}

func TestPair_OddCountPolicies(t *testing.T) {
	t.Parallel()

	ranked := []Standing{
		{PlayerID: 1, Name: "A", Wins: 2},
		{PlayerID: 2, Name: "B", Wins: 2},
		{PlayerID: 3, Name: "C", Wins: 1},
		{PlayerID: 4, Name: "D", Wins: 0},
		{PlayerID: 5, Name: "E", Wins: 0},
	}

	t.Run("error policy", func(t *testing.T) {
		t.Parallel()

		_, err := Pair(ranked, OddPolicyError)
		if !errors.Is(err, ErrOddParticipantCount) {
			t.Fatalf("expected ErrOddParticipantCount, got %v", err)
		}
	})

	t.Run("bye policy", func(t *testing.T) {
		t.Parallel()

		got, err := Pair(ranked, OddPolicyBye)
		if err != nil {
			t.Fatalf("Pair error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 2 pairings and a bye, got %d rows", len(got))
		}
		last := got[2]
		if !last.Bye || last.Away != nil || last.Home.PlayerID != 5 {
			t.Fatalf("expected bye for lowest ranked player, got %+v", last)
		}
	})
}

func TestPair_Empty(t *testing.T) {
	t.Parallel()

	got, err := Pair(nil, OddPolicyError)
	if err != nil {
		t.Fatalf("Pair error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no pairings, got %+v", got)
	}
}

func TestParseOddPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    OddPolicy
		wantErr bool
	}{
		{in: "", want: OddPolicyError},
		{in: "error", want: OddPolicyError},
		{in: " BYE ", want: OddPolicyBye},
		{in: "drop", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseOddPolicy(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseOddPolicy(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseOddPolicy(%q)=%q,%v want=%q", tt.in, got, err, tt.want)
		}
	}
}
