package models

import "time"

type Category string

const (
	CategoryBoulder Category = "boulder"
	CategorySport   Category = "sport"
	CategoryTrad    Category = "trad"
)

// Categories lists every climbing discipline in display order.
var Categories = []Category{CategoryBoulder, CategorySport, CategoryTrad}

// Attempt is one logged session of tries against a climb.
type Attempt struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Attempts int       `json:"attempts"`
	Send     bool      `json:"send"`
	Notes    string    `json:"notes"`
}

// Climb is a named climbing objective with its attempt history.
// Whether a climb has been sent is never stored; it is derived from
// the attempts on demand.
type Climb struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Area        string    `json:"area"`
	Grade       string    `json:"grade"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	Video       string    `json:"video,omitempty"`
	Attempts    []Attempt `json:"attempts"`
}
