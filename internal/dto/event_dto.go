package dto

// EventLoggedMessage is the bus payload published after an event is appended.
type EventLoggedMessage struct {
	RunId     string `json:"run_id"`
	Imsi      string `json:"imsi"`
	Location  string `json:"location"`
	Timestamp string `json:"timestamp"`
}
