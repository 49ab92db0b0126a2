package dto

// Summary is the aggregated view of the event log.
type Summary struct {
	Total     int             `json:"total"` // raw line count, malformed lines included
	Counts    []LocationCount `json:"counts"`
	Malformed int             `json:"malformed"`
	Empty     bool            `json:"empty"` // log file does not exist
}

type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}
