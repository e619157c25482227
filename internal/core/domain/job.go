package domain

import (
	"errors"
	"time"
)

var ErrJobNotFound = errors.New("job not found")

// Job is a government job opening posted by an admin.
type Job struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Department      string    `json:"department"`
	Description     string    `json:"description"`
	Qualification   string    `json:"qualification"`
	ApplicationLink string    `json:"application_link,omitempty"`
	LastDateToApply time.Time `json:"last_date_to_apply"`
	PostedDate      time.Time `json:"posted_date"`
	CreatedByID     string    `json:"created_by_id"`
	CreatedByEmail  string    `json:"created_by_email"`
}
