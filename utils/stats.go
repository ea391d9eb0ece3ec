package utils

import "time"

// smoothing is the weight of the newest sample in the moving averages
const smoothing = 0.1

// Stats for performance monitoring
type Stats struct {
	FramesPerSecond   float64
	AveragePopulation float64
	TotalGenerations  int
	Restarts          int
	StartTime         time.Time

	samples int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records the frame showing generation. frameDuration is the time
// since the previous frame and 0 for the first one, which leaves the frame
// rate untouched.
func (s *Stats) Update(generation int, population int, frameDuration time.Duration) {
	s.TotalGenerations = generation

	if frameDuration > 0 {
		fps := float64(time.Second) / float64(frameDuration)
		if s.FramesPerSecond == 0 {
			s.FramesPerSecond = fps
		} else {
			s.FramesPerSecond = movingAverage(s.FramesPerSecond, fps)
		}
	}

	if s.samples == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = movingAverage(s.AveragePopulation, float64(population))
	}
	s.samples++
}

// GenerationsPerSecond is the mean rate over the whole run
func (s *Stats) GenerationsPerSecond() float64 {
	secs := s.Runtime().Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.TotalGenerations) / secs
}

// Runtime returns how long the stats have been collected
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

func movingAverage(avg, sample float64) float64 {
	return avg*(1-smoothing) + sample*smoothing
}
