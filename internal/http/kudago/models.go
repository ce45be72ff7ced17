package kudago

import "encoding/json"

// Response shapes for the events catalog, declared separately from
// the pass-through client for callers that want typed access.

type EventDate struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

type EventPlace struct {
	ID int `json:"id"`
}

type EventLocation struct {
	Slug string `json:"slug"`
}

type ImageSource struct {
	Link string `json:"link"`
	Name string `json:"name"`
}

type Image struct {
	Image  string      `json:"image"`
	Source ImageSource `json:"source"`
}

type Event struct {
	ID              int           `json:"id"`
	PublicationDate int64         `json:"publication_date"`
	Dates           []EventDate   `json:"dates"`
	Title           string        `json:"title"`
	Slug            string        `json:"slug"`
	Place           *EventPlace   `json:"place"`
	Description     string        `json:"description"`
	BodyText        string        `json:"body_text"`
	Location        EventLocation `json:"location"`
	Categories      []string      `json:"categories"`
	Tagline         string        `json:"tagline"`
	AgeRestriction  string        `json:"age_restriction"`
	Price           string        `json:"price"`
	IsFree          bool          `json:"is_free"`
	Images          []Image       `json:"images"`
	FavoritesCount  int           `json:"favorites_count"`
	CommentsCount   int           `json:"comments_count"`
	SiteURL         string        `json:"site_url"`
	ShortTitle      string        `json:"short_title"`
	Tags            []string      `json:"tags"`
	DisableComments bool          `json:"disable_comments"`
}

// EventsPage is the paginated envelope the catalog wraps results in.
type EventsPage struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Event `json:"results"`
}

// ParseEvents decodes a raw events response body.
func ParseEvents(body []byte) (*EventsPage, error) {
	var page EventsPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
