package types

import (
	"errors"
	"testing"
)

func TestParseUnitKind(t *testing.T) {
	tests := []struct {
		input    string
		expected UnitKind
	}{
		{"melee", UnitMelee},
		{"Knight", UnitMelee},
		{"ranged", UnitRanged},
		{" ARCHER ", UnitRanged},
		{"tank", UnitTank},
		{"giant", UnitTank},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, err := ParseUnitKind(tt.input)
			if err != nil {
				t.Fatalf("ParseUnitKind(%q) returned error: %v", tt.input, err)
			}
			if kind != tt.expected {
				t.Errorf("ParseUnitKind(%q) = %v, expected %v", tt.input, kind, tt.expected)
			}
		})
	}

	t.Run("未知类型", func(t *testing.T) {
		_, err := ParseUnitKind("dragon")
		if !errors.Is(err, ErrInvalidUnitKind) {
			t.Errorf("Expected ErrInvalidUnitKind, got %v", err)
		}
	})
}

func TestUnitKindValid(t *testing.T) {
	for _, kind := range AllUnitKinds {
		if !kind.Valid() {
			t.Errorf("%v should be valid", kind)
		}
	}
	if UnitKind(-1).Valid() || UnitKind(3).Valid() {
		t.Error("Out of range unit kinds should be invalid")
	}
	if !UnitTank.TargetsTowersOnly() || UnitMelee.TargetsTowersOnly() || UnitRanged.TargetsTowersOnly() {
		t.Error("Only the tank kind targets towers only")
	}
}

func TestTeamOpponent(t *testing.T) {
	if TeamPlayer.Opponent() != TeamEnemy {
		t.Error("Player opponent should be enemy")
	}
	if TeamEnemy.Opponent() != TeamPlayer {
		t.Error("Enemy opponent should be player")
	}
}

func TestMatchResultIsTerminal(t *testing.T) {
	if ResultNone.IsTerminal() {
		t.Error("ResultNone should not be terminal")
	}
	if !ResultVictory.IsTerminal() || !ResultDefeat.IsTerminal() {
		t.Error("Victory and defeat should be terminal")
	}
}
