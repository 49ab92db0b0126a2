package constant

// Log line labels. "<timestamp> | IMSI: <imsi> | Location: <location>"
const (
	LogFieldSeparator = "|"
	LogLabelImsi      = "IMSI"
	LogLabelLocation  = "Location"

	TimestampLayout = "2006-01-02 15:04:05"
	ImsiLength      = 15
)

const (
	EventBusTopicLogged = "EVENT_LOGGED"
	EventTypeLogged     = "EVENT_LOGGED"
)

// ASCII map geometry.
const (
	MapRows    = 12
	MapColumns = 40
	MapFiller  = '.'
)

const (
	MessageNoEvents   = "No events logged yet."
	MessageEventTitle = "[IMSI-Catcher Event]"
	MessageMapTitle   = "IMSI-Catcher ASCII Map (randomized):"
)

// Landmarks is the fixed, ordered set of locations events are drawn from.
// The order is significant: the ASCII map uses the index as row and marker.
var Landmarks = []string{
	"Central Park",
	"Times Square",
	"Golden Gate Bridge",
	"Eiffel Tower",
	"London Eye",
	"Tokyo Tower",
	"Sydney Opera House",
	"Red Square",
	"Colosseum",
	"Great Wall",
	"Burj Khalifa",
	"Niagara Falls",
}

// IsLandmark reports whether name is one of Landmarks.
func IsLandmark(name string) bool {
	for _, l := range Landmarks {
		if l == name {
			return true
		}
	}
	return false
}
