package utils

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Report formats the stats for humans
func (s *Stats) Report() string {
	return s.report(time.Since(s.StartTime))
}

func (s *Stats) report(elapsed time.Duration) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d generations in %.1f seconds | %.1f gen/sec | %.1f avg population",
		s.TotalGenerations, elapsed.Seconds(), s.GenerationsPerSecond, s.AveragePopulation)
}
