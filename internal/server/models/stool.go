package models

// StoolLog is a single bowel-movement entry. LogDate is a calendar date
// in YYYY-MM-DD form.
type StoolLog struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	LogDate   string `json:"log_date"`
	StoolType int    `json:"stool_type"`
	Notes     string `json:"notes"`
}
