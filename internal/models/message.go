package models

// Message is a text post attributed to an account. TimePostedEpoch is
// epoch milliseconds supplied by the caller, not generated here.
type Message struct {
	ID              int    `json:"message_id"`
	PostedBy        int    `json:"posted_by"`
	MessageText     string `json:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}
