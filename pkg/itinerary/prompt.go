package itinerary

import (
	"fmt"
	"io"
	"sync"

	"github.com/goliatone/go-questionnaire/pkg/form"
	"github.com/goliatone/go-questionnaire/pkg/question"
	"github.com/goliatone/go-questionnaire/pkg/render/template/pongo"
)

const suggestionTemplate = `{% autoescape off %}Based on a trip to {{ destination }} in {{ startDate }} for {{ duration }}:

1. First, provide a detailed description of the destination during this season, including:
   - Weather conditions and what to expect
   - General pricing levels for the period (peak vs off-peak)
   - Major events or festivals happening
   - Tourist density and booking recommendations

2. Given that the traveler is interested in {{ interests|joincomma }},
   with a {{ budget }} budget, suggest specific activities and experiences.
   For each activity, put its name on its own line followed by:
   - Duration: estimated duration (in hours or days)
   - Price: approximate price range in USD
   - Category: Cultural, Outdoor, Culinary, etc.
   - Best time: best time of day to do it
   - Notes: booking requirements, seasonal availability, etc.

3. Organize the activities by category and indicate which ones best match
   the user's stated interests.

Please provide specific, practical suggestions that align with the traveler's interests and budget.
{% endautoescape %}`

var promptEngine = sync.OnceValues(func() (*pongo.Engine, error) {
	return pongo.New(pongo.WithName("itinerary"))
})

// SuggestionPrompt builds the trip-suggestion prompt from the travel
// answers. The activity format it asks for is the one ParseActivities reads.
func SuggestionPrompt(record form.Record) (string, error) {
	engine, err := promptEngine()
	if err != nil {
		return "", fmt.Errorf("itinerary: template engine: %w", err)
	}
	return engine.RenderString(suggestionTemplate, map[string]any{
		"destination": record.Text(question.IDDestination),
		"startDate":   record.Text(question.IDStartDate),
		"duration":    record.Text(question.IDDuration),
		"interests":   record.Selected(question.IDInterests),
		"budget":      record.Text(question.IDBudget),
	})
}

// NewPromptSink returns a sink that writes the suggestion prompt for every
// submitted record to w.
func NewPromptSink(w io.Writer, opts ...Option) form.Sink {
	cfg := newConfig(opts)
	return form.SinkFunc(func(record form.Record) {
		prompt, err := SuggestionPrompt(record)
		if err != nil {
			cfg.logger.Error().Err(err).Msg("build suggestion prompt")
			return
		}
		if _, err := io.WriteString(w, prompt); err != nil {
			cfg.logger.Error().Err(err).Msg("write suggestion prompt")
		}
	})
}
