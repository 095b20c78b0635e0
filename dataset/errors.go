package dataset

import "fmt"

// MalformedEntityError reports a train record that failed structural checks
// during Load. Index is the record's position in the input trains array.
type MalformedEntityError struct {
	Index   int
	TrainID string
	Reason  string
}

func (e *MalformedEntityError) Error() string {
	return fmt.Sprintf("malformed train %q at index %d: %s", e.TrainID, e.Index, e.Reason)
}
