package utils

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 500*time.Millisecond)
	if s.TotalGenerations != 1 || s.GenerationsPerSecond != 2 || s.AveragePopulation != 100 {
		t.Fatalf("unexpected stats %+v", s)
	}

	s.Update(2, 200, 0)
	if s.GenerationsPerSecond != 2 {
		t.Fatal("zero duration should keep the previous rate")
	}
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("AveragePopulation = %v, want 110", s.AveragePopulation)
	}
}

func TestStatsReport(t *testing.T) {
	s := NewStats()
	s.Update(12345, 10, time.Second)

	got := s.report(2 * time.Second)
	for _, want := range []string{"12,345 generations", "2.0 seconds", "1.0 gen/sec", "10.0 avg population"} {
		if !strings.Contains(got, want) {
			t.Fatalf("report %q missing %q", got, want)
		}
	}
}
