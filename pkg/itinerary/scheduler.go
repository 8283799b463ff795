package itinerary

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
)

// ErrInvalidRange is returned when a trip ends before it starts.
var ErrInvalidRange = errors.New("itinerary: end date before start date")

// Block is a schedulable window of the day, in whole hours.
type Block struct {
	Name  TimeBlock
	Start int
	End   int
}

// Hours is the block length.
func (b Block) Hours() float64 {
	return float64(b.End - b.Start)
}

// DailyBlocks lists the time blocks of every trip day, in order.
var DailyBlocks = []Block{
	{Name: Morning, Start: 9, End: 12},
	{Name: Afternoon, Start: 13, End: 17},
	{Name: Evening, Start: 18, End: 22},
}

// Day is one scheduled trip day. Empty blocks are nil.
type Day struct {
	Date      time.Time `json:"date"`
	Morning   *Activity `json:"morning"`
	Afternoon *Activity `json:"afternoon"`
	Evening   *Activity `json:"evening"`
}

// At returns the activity scheduled in block.
func (d Day) At(block TimeBlock) *Activity {
	switch block {
	case Morning:
		return d.Morning
	case Afternoon:
		return d.Afternoon
	case Evening:
		return d.Evening
	}
	return nil
}

func (d *Day) set(block TimeBlock, a *Activity) {
	switch block {
	case Morning:
		d.Morning = a
	case Afternoon:
		d.Afternoon = a
	case Evening:
		d.Evening = a
	}
}

// Option configures a Scheduler or prompt sink.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	logger zerolog.Logger
}

// WithRand makes activity selection reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	c := config{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// Scheduler distributes a pool of activities over the days of a trip.
type Scheduler struct {
	cfg        config
	activities []Activity
}

// NewScheduler returns an empty scheduler.
func NewScheduler(opts ...Option) *Scheduler {
	return &Scheduler{cfg: newConfig(opts)}
}

// Add appends activities to the pool.
func (s *Scheduler) Add(activities ...Activity) {
	s.activities = append(s.activities, activities...)
}

// Fits reports whether a can be placed in block: it must not be longer than
// the block and, when it has a preferred time, that time must be block.
func Fits(a Activity, block Block) bool {
	if a.PreferredTime != "" && a.PreferredTime != block.Name {
		return false
	}
	return a.Duration <= block.Hours()
}

// Generate schedules one day per calendar date from start to end inclusive.
// Each activity is used at most once. For every block a random fitting
// activity is picked, favouring those that prefer the block.
func (s *Scheduler) Generate(start, end time.Time) ([]Day, error) {
	start = dateOf(start)
	end = dateOf(end)
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	available := make([]Activity, len(s.activities))
	copy(available, s.activities)

	var days []Day
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		day := Day{Date: date}
		for _, block := range DailyBlocks {
			if len(available) == 0 {
				break
			}
			idx := s.pick(available, block)
			if idx < 0 {
				continue
			}
			chosen := available[idx]
			day.set(block.Name, &chosen)
			available = append(available[:idx], available[idx+1:]...)
		}
		days = append(days, day)
	}

	s.cfg.logger.Debug().
		Int("days", len(days)).
		Int("unscheduled", len(available)).
		Msg("schedule generated")
	return days, nil
}

func (s *Scheduler) pick(available []Activity, block Block) int {
	var suitable, preferred []int
	for i, a := range available {
		if !Fits(a, block) {
			continue
		}
		suitable = append(suitable, i)
		if a.PreferredTime == block.Name {
			preferred = append(preferred, i)
		}
	}
	candidates := suitable
	if len(preferred) > 0 {
		candidates = preferred
	}
	if len(candidates) == 0 {
		return -1
	}
	return candidates[s.intN(len(candidates))]
}

func (s *Scheduler) intN(n int) int {
	if s.cfg.rng != nil {
		return s.cfg.rng.IntN(n)
	}
	return rand.IntN(n)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Stats summarises a generated schedule.
type Stats struct {
	TotalActivities int            `json:"totalActivities"`
	CostMin         float64        `json:"costMin"`
	CostMax         float64        `json:"costMax"`
	ByCategory      map[string]int `json:"byCategory"`
}

// Summarize counts scheduled activities and sums their price ranges.
func Summarize(days []Day) Stats {
	stats := Stats{ByCategory: map[string]int{}}
	for _, day := range days {
		for _, block := range DailyBlocks {
			a := day.At(block.Name)
			if a == nil {
				continue
			}
			stats.TotalActivities++
			stats.CostMin += a.PriceMin
			stats.CostMax += a.PriceMax
			stats.ByCategory[a.Category]++
		}
	}
	return stats
}
