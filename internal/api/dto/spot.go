package dto

type SpotPayload struct {
	SpotID          string   `json:"spot_id"`
	Name            string   `json:"name"`
	Address         string   `json:"address"`
	Lon             float64  `json:"lon"`
	Lat             float64  `json:"lat"`
	Categories      []string `json:"categories"`
	Rating          float64  `json:"rating"`
	UserRatingCount int      `json:"user_rating_count"`
	PhotoReference  string   `json:"photo_reference,omitempty"`
}

type ListSpotsResponse struct {
	Spots []SpotPayload `json:"spots"`
}
