package model

import (
	"time"
)

// Region is a provider region that account refreshes can target. Only active
// regions are offered as choices by the lookup flow.
type Region struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
