package changes

import "time"

type Op string

const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

func (o Op) Valid() bool {
	switch o {
	case OpInsert, OpUpdate, OpDelete:
		return true
	default:
		return false
	}
}

// Change es una entrada del feed: una mutación exitosa sobre una content URI.
type Change struct {
	ID  string
	URI string // URI afectada (colección o fila)
	Op  Op

	Rows       int
	RecordedAt time.Time
}
