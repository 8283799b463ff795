package question

// TravelTitle is the heading shown above the travel questionnaire.
const TravelTitle = "Travel Planning Questionnaire"

// Travel question ids. They double as the answer record's field names.
const (
	IDDestination              = "destination"
	IDStartDate                = "startDate"
	IDDuration                 = "duration"
	IDGroupSize                = "groupSize"
	IDBudget                   = "budget"
	IDTripPurpose              = "tripPurpose"
	IDAccommodation            = "accommodation"
	IDInterests                = "interests"
	IDTransportationPreference = "transportationPreference"
	IDSpecialRequirements      = "specialRequirements"
)

var travelSet = MustSet(TravelTitle,
	Descriptor{
		ID:          IDDestination,
		Prompt:      "Where would you like to go?",
		Kind:        KindText,
		Placeholder: "Enter city or country",
		Icon:        "map-pin",
	},
	Descriptor{
		ID:          IDStartDate,
		Prompt:      "When are you planning to travel?",
		Kind:        KindMonth,
		Placeholder: "Select month and year",
		Icon:        "calendar",
	},
	Descriptor{
		ID:      IDDuration,
		Prompt:  "How long do you plan to stay?",
		Kind:    KindSelect,
		Options: []string{"Weekend", "1 week", "2 weeks", "1 month", "More than 1 month"},
		Icon:    "clock",
	},
	Descriptor{
		ID:      IDGroupSize,
		Prompt:  "How many people are traveling?",
		Kind:    KindSelect,
		Options: []string{"Solo", "Couple", "Family (3-5)", "Group (6+)"},
		Icon:    "users",
	},
	Descriptor{
		ID:      IDBudget,
		Prompt:  "What is your budget range per person?",
		Kind:    KindSelect,
		Options: []string{"Budget ($0-1000)", "Moderate ($1000-3000)", "Luxury ($3000+)"},
	},
	Descriptor{
		ID:      IDTripPurpose,
		Prompt:  "What is the main purpose of your trip?",
		Kind:    KindMultiSelect,
		Options: []string{"Relaxation", "Adventure", "Cultural", "Business", "Food & Dining", "Nightlife"},
	},
	Descriptor{
		ID:      IDAccommodation,
		Prompt:  "What type of accommodation do you prefer?",
		Kind:    KindSelect,
		Options: []string{"Hostel", "Budget Hotel", "Mid-range Hotel", "Luxury Resort", "Vacation Rental"},
	},
	Descriptor{
		ID:      IDInterests,
		Prompt:  "What activities interest you the most?",
		Kind:    KindMultiSelect,
		Options: []string{"Sightseeing", "Museums", "Shopping", "Outdoor Activities", "Local Cuisine", "Beaches"},
	},
	Descriptor{
		ID:      IDTransportationPreference,
		Prompt:  "How do you prefer to get around?",
		Kind:    KindSelect,
		Options: []string{"Public Transport", "Rental Car", "Walking/Biking", "Guided Tours", "Mix of Options"},
	},
	Descriptor{
		ID:          IDSpecialRequirements,
		Prompt:      "Any special requirements or preferences?",
		Kind:        KindText,
		Placeholder: "E.g., accessibility needs, dietary restrictions, etc.",
	},
)

// TravelSet returns the built-in ten-question travel set.
func TravelSet() Set {
	return travelSet
}
