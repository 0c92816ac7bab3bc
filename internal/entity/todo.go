package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidStatus is returned for a status outside the known set.
var ErrInvalidStatus = errors.New("invalid status")

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// ParseStatus validates s. Any status can move to any other.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusInProgress, StatusDone:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

type Todo struct {
	ID      ID     `json:"id"`
	Content string `json:"content"`
	Status  Status `json:"status"`
	BoardID ID     `json:"board_id"`
}

// TodoPatch carries a partial update. Nil fields are left unchanged.
type TodoPatch struct {
	Content *string `json:"content"`
	Status  *string `json:"status"`
}

func (p TodoPatch) IsEmpty() bool {
	return p.Content == nil && p.Status == nil
}
