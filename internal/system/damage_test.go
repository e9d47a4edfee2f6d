package system

import (
	"testing"

	"go-spline-defense/internal/defs"
	"go-spline-defense/pkg/spline"
)

func TestComputeDamage(t *testing.T) {
	weakness := map[defs.DamageType]float64{
		defs.DamageFire:   1.5,
		defs.DamageIce:    0.5,
		defs.DamagePoison: 0,
	}
	tests := []struct {
		name   string
		base   float64
		typ    defs.DamageType
		amount int
		rank   defs.DamageRank
	}{
		{"critical", 10, defs.DamageFire, 15, defs.RankCritical},
		{"reduced and truncated", 5, defs.DamageIce, 2, defs.RankReduce},
		{"immune", 40, defs.DamagePoison, 0, defs.RankNone},
		{"missing entry", 7, defs.DamageLightning, 7, defs.RankClassic},
		{"ignore weakness", 7, defs.DamageIgnoreWeakness, 7, defs.RankClassic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, rank := ComputeDamage(tt.base, tt.typ, weakness)
			if amount != tt.amount || rank != tt.rank {
				t.Errorf("Expected %d/%s, got %d/%s", tt.amount, tt.rank, amount, rank)
			}
		})
	}
}

func TestEffectiveDamageTruncatesTwice(t *testing.T) {
	w := newWorld(t)
	id := w.placeTower(t, defs.TowerMage, spline.Point{})
	tw := w.tower(t, id)
	tw.Combat.Stats.Damage = 3
	tw.Bonus.Add(99, defs.BonusDamage, 1.5)

	// int(3 × 1.5) = 4, затем int(4 × 0.5) = 2
	if got := EffectiveDamage(tw); got != 4 {
		t.Fatalf("Expected effective damage 4, got %d", got)
	}
	amount, _ := ComputeDamage(float64(EffectiveDamage(tw)), defs.DamageIce, map[defs.DamageType]float64{defs.DamageIce: 0.5})
	if amount != 2 {
		t.Errorf("Expected 2 after weakness, got %d", amount)
	}
}

func TestFormatDamage(t *testing.T) {
	cases := map[int]string{0: "0", 15: "15", 999: "999", 1000: "1K", 2750: "2K"}
	for in, want := range cases {
		if got := FormatDamage(in); got != want {
			t.Errorf("FormatDamage(%d): expected %q, got %q", in, want, got)
		}
	}
}
