package models

import "time"

// EIBORRate is one published EIBOR tenor rate.
type EIBORRate struct {
	Period    string    `json:"eiborPeriod"` // e.g. "1M", "3M", "6M"
	Rate      float64   `json:"eiborRates"`  // percent
	FetchedAt time.Time `json:"fetchedAt"`
}
