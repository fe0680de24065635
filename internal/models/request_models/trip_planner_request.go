package request_models

// TripPlannerRequest mirrors the planner form. All fields are free text except
// Budget, which is one of the three tiers.
type TripPlannerRequest struct {
	TripLength   string `json:"tripLength" binding:"required"`
	TravelMonth  string `json:"travelMonth" binding:"required"`
	PartySize    string `json:"partySize" binding:"required"`
	MaxDriveTime string `json:"maxDriveTime" binding:"required"`
	Interests    string `json:"interests" binding:"required"`
	Budget       string `json:"budget" binding:"required,oneof=budget moderate luxury"`
}
