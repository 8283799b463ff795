// Package itinerary turns questionnaire answers into a trip-suggestion
// prompt, parses suggested activities back out of free text and schedules
// them over the days of the trip.
package itinerary
