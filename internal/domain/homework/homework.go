package homework

import (
	"errors"
	"fmt"
)

// Status is the review status reported by the API for a single homework.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Homework is one entry of the "homeworks" sequence in an API response.
// Both fields may be absent in the raw payload; an absent name is rendered
// as an empty name, while an absent status fails FormatNotification.
type Homework struct {
	Name   string `json:"homework_name"`
	Status Status `json:"status"`
}

// ErrUnknownStatus is returned when a homework carries a status outside the
// three known review statuses.
var ErrUnknownStatus = errors.New("homework status not recognized")

// verdicts maps each known status to its canned human-readable text.
var verdicts = map[Status]string{
	StatusApproved:  "The reviewer liked everything. Hooray!",
	StatusReviewing: "The work was taken for review.",
	StatusRejected:  "The reviewer has remarks.",
}

// FormatNotification renders the chat message for a status change.
func FormatNotification(h Homework) (string, error) {
	verdict, ok := verdicts[h.Status]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, h.Status)
	}
	return fmt.Sprintf("Changed review status of %q. %s", h.Name, verdict), nil
}
