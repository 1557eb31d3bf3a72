package ports

import "time"

// Clock supplies the current time to use cases. Injecting it keeps
// date-sensitive rules, such as the strictly-future delivery date and overdue
// detection, testable with a fixed time.
type Clock interface {
	Now() time.Time
}
