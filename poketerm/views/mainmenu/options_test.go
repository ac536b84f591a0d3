package mainmenu

import (
	"errors"
	"testing"

	"github.com/nathanieltooley/porycalc/porygon"
)

func TestParseLevel(t *testing.T) {
	if level, err := parseLevel("50"); err != nil || level != 50 {
		t.Fatalf("expected 50, got %d (%v)", level, err)
	}

	if _, err := parseLevel("101"); !errors.Is(err, porygon.ErrStatRangeInvalid) {
		t.Fatalf("expected ErrStatRangeInvalid, got %v", err)
	}

	if _, err := parseLevel("lvl"); err == nil {
		t.Fatalf("expected an error for a non number")
	}
}
