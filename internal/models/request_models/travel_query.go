package request_models

type TravelQuery struct {
	Query               string `json:"query" binding:"required"`
	PreferRecent        bool   `json:"preferRecent"`
	OfficialSourcesOnly bool   `json:"officialSourcesOnly"`
}
