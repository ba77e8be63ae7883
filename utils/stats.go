package utils

import (
	"time"

	"github.com/sheikhrachel/go-life/model"
)

// Stats for performance monitoring. It implements model.Observer.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     uint64
	Population           int
	Born                 int
	Died                 int
	TotalBorn            int
	TotalDied            int
	StartTime            time.Time

	now      func() time.Time
	lastSeen time.Time
}

func NewStats() *Stats {
	return newStatsWithClock(time.Now)
}

func newStatsWithClock(now func() time.Time) *Stats {
	start := now()
	return &Stats{StartTime: start, now: now, lastSeen: start}
}

// OnGeneration records a generation reported by the engine
func (s *Stats) OnGeneration(gen model.Generation) {
	now := s.now()
	s.Update(gen.Number, gen.Grid.CountLivingCells(), len(gen.Born), len(gen.Died), now.Sub(s.lastSeen))
	s.lastSeen = now
}

func (s *Stats) Update(generation uint64, population, born, died int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	s.Born = born
	s.Died = died
	s.TotalBorn += born
	s.TotalDied += died
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

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return s.now().Sub(s.StartTime)
}
