package dto

// AsciiMap is a randomized grid with one marker per landmark row.
type AsciiMap struct {
	Rows   []string      `json:"rows"`
	Legend []LegendEntry `json:"legend"`
}

type LegendEntry struct {
	Marker   string `json:"marker"`
	Location string `json:"location"`
}
