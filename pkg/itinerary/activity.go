package itinerary

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimeBlock names a part of the day activities are scheduled into.
type TimeBlock string

const (
	Morning   TimeBlock = "morning"
	Afternoon TimeBlock = "afternoon"
	Evening   TimeBlock = "evening"
)

var (
	// ErrUnparseable is returned when a price or duration has no number in it.
	ErrUnparseable = errors.New("itinerary: value has no number")
	// ErrMissingField is returned when a suggested activity lacks a required detail.
	ErrMissingField = errors.New("itinerary: missing activity field")
)

// Activity is a schedulable suggestion. Duration is in hours.
type Activity struct {
	Name          string    `json:"name"`
	Duration      float64   `json:"duration"`
	Category      string    `json:"category"`
	PriceMin      float64   `json:"priceMin"`
	PriceMax      float64   `json:"priceMax"`
	PreferredTime TimeBlock `json:"preferredTime,omitempty"`
}

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ParsePriceRange extracts a range from text such as "$30-40" or "$30 - $40".
// A single number is used as both bounds.
func ParsePriceRange(s string) (float64, float64, error) {
	numbers, err := numbersIn(s)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: price %q", ErrUnparseable, s)
	}
	if len(numbers) >= 2 {
		return numbers[0], numbers[1], nil
	}
	return numbers[0], numbers[0], nil
}

// ParseDuration converts a duration description to hours. Anything
// mentioning "day" counts as a full 8 hour day; ranges ("2-3 hours") are
// averaged.
func ParseDuration(s string) (float64, error) {
	if strings.Contains(strings.ToLower(s), "day") {
		return 8, nil
	}
	numbers, err := numbersIn(s)
	if err != nil {
		return 0, fmt.Errorf("%w: duration %q", ErrUnparseable, s)
	}
	if len(numbers) >= 2 {
		return (numbers[0] + numbers[1]) / 2, nil
	}
	return numbers[0], nil
}

func numbersIn(s string) ([]float64, error) {
	matches := numberPattern.FindAllString(s, -1)
	if len(matches) == 0 {
		return nil, ErrUnparseable
	}
	out := make([]float64, 0, len(matches))
	for _, m := range matches {
		f, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

var timeKeywords = []struct {
	block    TimeBlock
	keywords []string
}{
	{Morning, []string{"morning", "sunrise", "early", "breakfast"}},
	{Afternoon, []string{"afternoon", "lunch", "noon", "midday"}},
	{Evening, []string{"evening", "sunset", "night", "dinner"}},
}

// PreferredTimeOf maps a "best time" description onto a time block. Morning
// keywords win over afternoon, afternoon over evening. No match yields "".
func PreferredTimeOf(s string) TimeBlock {
	s = strings.ToLower(s)
	for _, group := range timeKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(s, keyword) {
				return group.block
			}
		}
	}
	return ""
}

var detailKeys = map[string]string{
	"duration":  "duration",
	"price":     "price",
	"category":  "category",
	"best time": "best_time",
	"time":      "best_time",
}

// ParseActivities reads line-oriented suggestion text: a bare line without
// a colon starts an activity, "- Key: value" lines fill in its details.
// Activities that cannot be converted are reported in the joined error; the
// rest are still returned.
func ParseActivities(text string) ([]Activity, error) {
	var (
		blocks  []map[string]string
		current map[string]string
	)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "-") && !strings.Contains(line, ":") {
			if current != nil {
				blocks = append(blocks, current)
			}
			current = map[string]string{"name": line}
			continue
		}
		if !strings.HasPrefix(line, "-") || current == nil {
			continue
		}
		key, value, ok := strings.Cut(strings.TrimLeft(line, "- "), ":")
		if !ok {
			continue
		}
		if mapped, known := detailKeys[strings.ToLower(strings.TrimSpace(key))]; known {
			current[mapped] = strings.TrimSpace(value)
		}
	}
	if current != nil {
		blocks = append(blocks, current)
	}

	var (
		activities []Activity
		errs       []error
	)
	for _, block := range blocks {
		activity, err := convert(block)
		if err != nil {
			errs = append(errs, fmt.Errorf("activity %q: %w", block["name"], err))
			continue
		}
		activities = append(activities, activity)
	}
	return activities, errors.Join(errs...)
}

func convert(block map[string]string) (Activity, error) {
	for _, field := range []string{"duration", "price", "category", "best_time"} {
		if _, ok := block[field]; !ok {
			return Activity{}, fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}
	duration, err := ParseDuration(block["duration"])
	if err != nil {
		return Activity{}, err
	}
	low, high, err := ParsePriceRange(block["price"])
	if err != nil {
		return Activity{}, err
	}
	return Activity{
		Name:          block["name"],
		Duration:      duration,
		Category:      block["category"],
		PriceMin:      low,
		PriceMax:      high,
		PreferredTime: PreferredTimeOf(block["best_time"]),
	}, nil
}
