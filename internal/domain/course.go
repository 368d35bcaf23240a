package domain

// Course is a recommendable course as delivered by the recommendation
// service. Records are immutable once received and the order in which
// they arrive is the display order; the service pre-ranks them.
type Course struct {
	ID              string  `json:"course_id"`
	Title           string  `json:"course_title"`
	Subject         string  `json:"subject"`
	Level           string  `json:"level"`
	Rating          float64 `json:"rating"`
	Subscribers     int     `json:"num_subscribers"`
	DurationHours   float64 `json:"content_duration"`
	URL             string  `json:"url"`
	RelevanceWeight float64 `json:"popularity_weight"`
}
