package daily

import (
	"testing"
	"time"

	"github.com/robalobadob/guessnumber/internal/oracle"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := time.Date(2026, 3, 2, 5, 0, 0, 0, loc)
	if got := DateKey(d); got != "2026-03-01" {
		t.Fatalf("expected 2026-03-01, got %s", got)
	}
}

func draw(t *testing.T, date time.Time, salt string) int {
	t.Helper()
	v, err := oracle.RandomInRange(1, 1_000_000, NewSource(date, salt))
	if err != nil {
		t.Fatalf("random in range: %v", err)
	}
	return v
}

func TestSourceDeterministicPerDay(t *testing.T) {
	morning := time.Date(2026, 10, 19, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 19, 23, 0, 0, 0, time.UTC)
	if a, b := draw(t, morning, "salt"), draw(t, evening, "salt"); a != b {
		t.Fatalf("same day produced %d and %d", a, b)
	}
}

func TestSourceVariesWithDateAndSalt(t *testing.T) {
	base := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	ref := draw(t, base, "salt")

	differs := false
	for i := 1; i <= 5; i++ {
		if draw(t, base.AddDate(0, 0, i), "salt") != ref {
			differs = true
			break
		}
	}
	if !differs {
		t.Fatal("expected different secrets across days")
	}
	if draw(t, base, "other") == ref && draw(t, base, "third") == ref {
		t.Fatal("expected salt to change the secret")
	}
}
