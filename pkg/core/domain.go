package core

import "fmt"

// DefaultLowThreshold is the threshold used by the low-stock report when the
// caller does not supply one.
const DefaultLowThreshold = 5

// Entry is a single name → quantity pair in the ledger.
type Entry struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Journal collects human-readable records of ledger mutations for the caller
// to inspect after the call. A nil journal discards records.
type Journal []string

// Record appends a line to the journal. Safe to call on a nil receiver.
func (j *Journal) Record(line string) {
	if j == nil {
		return
	}
	*j = append(*j, line)
}

// EventType represents the kind of change observed on the persisted ledger.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents an external change to the persisted ledger file.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}
