package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-questionnaire/pkg/itinerary"
)

const dateLayout = "2006-01-02"

// Schedule returns the command that spreads suggested activities over a trip.
func Schedule(a *app) *cobra.Command {
	var (
		activitiesPath string
		startDate      string
		endDate        string
		seed           uint64
		jsonOutput     bool
		withAlerts     bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule suggested activities over the days of a trip",
		Long: `Parse activity suggestions and place them into daily time blocks.

Suggestions are plain text: an activity name on its own line followed by
"- Duration:", "- Price:", "- Category:" and "- Best time:" lines. This is
the format the trip-suggestion prompt (run --suggest) asks for.

Blocks are morning (9-12), afternoon (13-17) and evening (18-22).

With --alerts the output also lists the trip timeline: preparation alerts
30, 14 and 3 days before the start and a reminder an hour before each
scheduled activity.
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := time.Parse(dateLayout, startDate)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			end := start
			if endDate != "" {
				if end, err = time.Parse(dateLayout, endDate); err != nil {
					return fmt.Errorf("--end: %w", err)
				}
			}

			text, err := readInput(activitiesPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			activities, err := itinerary.ParseActivities(string(text))
			if err != nil {
				a.logger.Warn().Err(err).Msg("some activities were skipped")
			}

			opts := []itinerary.Option{itinerary.WithLogger(a.logger)}
			if seed != 0 {
				opts = append(opts, itinerary.WithRand(rand.New(rand.NewPCG(seed, seed))))
			}
			scheduler := itinerary.NewScheduler(opts...)
			scheduler.Add(activities...)

			days, err := scheduler.Generate(start, end)
			if err != nil {
				return err
			}
			stats := itinerary.Summarize(days)

			var alerts itinerary.Timeline
			if withAlerts {
				alerts = itinerary.Alerts(start, days)
			}

			if jsonOutput {
				payload := map[string]any{"days": days, "stats": stats}
				if withAlerts {
					payload["alerts"] = alerts
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			}
			if err := writeSchedule(cmd.OutOrStdout(), days, stats); err != nil {
				return err
			}
			if withAlerts {
				return writeAlerts(cmd.OutOrStdout(), alerts)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&activitiesPath, "activities", "a", "-", "Activity suggestions file (- for stdin)")
	cmd.Flags().StringVar(&startDate, "start", "", "First trip day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "Last trip day (YYYY-MM-DD, default: start)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for reproducible schedules (0 picks one)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&withAlerts, "alerts", false, "Include preparation and activity alerts")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func writeSchedule(w io.Writer, days []itinerary.Day, stats itinerary.Stats) error {
	for _, day := range days {
		fmt.Fprintln(w, day.Date.Format(dateLayout))
		for _, block := range itinerary.DailyBlocks {
			activity := day.At(block.Name)
			if activity == nil {
				fmt.Fprintf(w, "  %-10s -\n", block.Name)
				continue
			}
			fmt.Fprintf(w, "  %-10s %s (%.1fh, $%.0f-%.0f)\n",
				block.Name, activity.Name, activity.Duration, activity.PriceMin, activity.PriceMax)
		}
	}

	fmt.Fprintf(w, "\nActivities: %d\nCost: $%.0f-%.0f\n", stats.TotalActivities, stats.CostMin, stats.CostMax)
	categories := make([]string, 0, len(stats.ByCategory))
	for category := range stats.ByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		if _, err := fmt.Fprintf(w, "  %s: %d\n", category, stats.ByCategory[category]); err != nil {
			return err
		}
	}
	return nil
}

func writeAlerts(w io.Writer, alerts itinerary.Timeline) error {
	if _, err := fmt.Fprintln(w, "\nAlerts:"); err != nil {
		return err
	}
	for _, alert := range alerts {
		if _, err := fmt.Fprintf(w, "  %s  %-6s %s\n", alert.At.Format("2006-01-02 15:04"), alert.Priority, alert.Title); err != nil {
			return err
		}
	}
	return nil
}
