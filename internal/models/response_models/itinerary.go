package response_models

type ActivityBlock struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

type ItineraryDay struct {
	DayNumber  int           `json:"dayNumber"`
	Title      string        `json:"title"`
	Location   string        `json:"location"`
	DriveTime  string        `json:"driveTime,omitempty"`
	Morning    ActivityBlock `json:"morning"`
	Afternoon  ActivityBlock `json:"afternoon"`
	Highlights []string      `json:"highlights"`
	RainPlan   string        `json:"rainPlan"`
	Budget     string        `json:"budget"`
}

type BudgetBreakdown struct {
	Accommodation string `json:"accommodation"`
	Meals         string `json:"meals"`
	Attractions   string `json:"attractions"`
	Transport     string `json:"transport"`
}

// Itinerary is the canonical planner output. Every field is populated no
// matter how malformed the model response was.
type Itinerary struct {
	ID                    string          `json:"id"`
	Title                 string          `json:"title"`
	Days                  []ItineraryDay  `json:"days"`
	AccommodationStrategy []string        `json:"accommodationStrategy"`
	BudgetBreakdown       BudgetBreakdown `json:"budgetBreakdown"`
	Timestamp             string          `json:"timestamp"`
}
