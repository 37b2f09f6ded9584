package chat

import (
	"time"

	"ratemypg/pkg/user"
)

type MessageId string

// Message is one entry in the shared chat room log.
type Message struct {
	Id      MessageId     `json:"id"`
	Author  user.Snapshot `json:"author"`
	Text    string        `json:"text"`
	Created time.Time     `json:"created"`
}
