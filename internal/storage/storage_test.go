package storage

import (
	"bytes"
	"errors"
	"os"
	"reflect"
	"testing"

	"go-spline-defense/internal/defs"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestBase38RoundTrip(t *testing.T) {
	inputs := [][]byte{
		nil,
		{0},
		{255},
		{0xff, 0xff},
		{1, 2, 3},
		{0xff, 0xff, 0xff, 0xff},
		[]byte("hello"),
		[]byte("57\n123\n4\nArcher 1 2 0\n"),
		bytes.Repeat([]byte{0xff}, 23),
	}
	for _, in := range inputs {
		enc := EncodeBase38(in)
		dec, err := DecodeBase38(enc)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", enc, err)
		}
		if !bytes.Equal(dec, in) && !(len(dec) == 0 && len(in) == 0) {
			t.Errorf("Expected %v, got %v", in, dec)
		}
	}
}

func TestBase38Lengths(t *testing.T) {
	want := map[int]int{1: 2, 2: 4, 3: 5, 4: 7, 5: 8, 6: 10, 10: 16}
	for n, digits := range want {
		if got := len(EncodeBase38(make([]byte, n))); got != digits {
			t.Errorf("%d bytes: expected %d digits, got %d", n, digits, got)
		}
	}
}

func TestBase38RejectsBadInput(t *testing.T) {
	for _, in := range []string{"0", "abc", "!!", "__"} {
		if _, err := DecodeBase38([]byte(in)); !errors.Is(err, ErrBadEncoding) {
			t.Errorf("Decode(%q): expected ErrBadEncoding, got %v", in, err)
		}
	}
}

func sample() LevelData {
	return LevelData{
		Life:  57,
		Money: 123,
		Wave:  4,
		Towers: []TowerData{
			{Type: defs.TowerArcher, X: 1, Y: 2, Z: 0},
			{Type: defs.TowerCannon, X: 3, Y: 4, Z: 0, AttackStyle: defs.AttackLast},
		},
	}
}

func TestLevelDataRoundTrip(t *testing.T) {
	log, _ := test.NewNullLogger()
	in := sample()
	in.Towers = append(in.Towers, TowerData{Type: defs.TowerMage, X: 612.25, Y: -0.1, Z: 0})

	out, err := ParseLevelData(in.String(), log)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("Expected %+v, got %+v", in, out)
	}
}

func TestParseDefaultsUnknownEnums(t *testing.T) {
	log, hook := test.NewNullLogger()
	out, err := ParseLevelData("10\n20\n3\nDragon 1 2 0 Sideways\nMage 5 6 0\n", log)
	if err != nil {
		t.Fatalf("Expected the load to continue, got %v", err)
	}
	if len(out.Towers) != 2 {
		t.Fatalf("Expected two towers, got %d", len(out.Towers))
	}
	if out.Towers[0].Type != defs.TowerTypes[0] || out.Towers[0].AttackStyle != defs.AttackStyles[0] {
		t.Errorf("Expected defaults for unknown tokens, got %+v", out.Towers[0])
	}
	if out.Towers[1].Type != defs.TowerMage {
		t.Errorf("Expected the next line intact, got %+v", out.Towers[1])
	}
	warnings := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings++
		}
	}
	if warnings != 2 {
		t.Errorf("Expected two warnings, got %d", warnings)
	}
}

func TestParseRejectsMalformedScalars(t *testing.T) {
	log, _ := test.NewNullLogger()
	for _, in := range []string{"", "1\n2", "x\n2\n3\n", "1\n2\n3\nArcher 1 two 0\n", "1\n2\n3\nArcher 1\n"} {
		if _, err := ParseLevelData(in, log); !errors.Is(err, ErrMalformedSave) {
			t.Errorf("Parse(%q): expected ErrMalformedSave, got %v", in, err)
		}
	}
}

func TestStoreSaveLoadDelete(t *testing.T) {
	log, _ := test.NewNullLogger()
	store := NewStore(t.TempDir()+"/Levels", logrus.NewEntry(log))

	if store.Exists("meadow") {
		t.Fatal("Expected no save yet")
	}
	if _, err := store.Load("meadow"); !errors.Is(err, ErrNoSave) {
		t.Fatalf("Expected ErrNoSave, got %v", err)
	}
	if err := store.Save("meadow", sample()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	raw, err := os.ReadFile(store.Path("meadow"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(raw, []byte("Archer")) {
		t.Error("Expected the file to be encoded")
	}

	got, err := store.Load("meadow")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, sample()) {
		t.Errorf("Expected %+v, got %+v", sample(), got)
	}

	if err := store.Delete("meadow"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if store.Exists("meadow") {
		t.Error("Expected the save gone")
	}
	if err := store.Delete("meadow"); err != nil {
		t.Errorf("Expected deleting a missing save to succeed, got %v", err)
	}
}

func TestStoreRejectsCorruptFile(t *testing.T) {
	log, _ := test.NewNullLogger()
	store := NewStore(t.TempDir(), logrus.NewEntry(log))
	if err := os.WriteFile(store.Path("meadow"), []byte("not base38!"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load("meadow"); !errors.Is(err, ErrMalformedSave) {
		t.Errorf("Expected ErrMalformedSave, got %v", err)
	}
}
