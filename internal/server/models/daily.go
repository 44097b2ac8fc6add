package models

import "time"

// DailyItem is a user-defined habit or one-time task. Items and their logs
// are linked by ItemName within the user scope, so deleting an item must
// cascade to its logs in one transaction.
type DailyItem struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	ItemName    string     `json:"item_name"`
	ItemType    string     `json:"item_type"`
	Status      *string    `json:"status"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// DailyLog is one item's entry for one calendar date. The
// (user, date, item name) triple is unique; saving again overwrites
// status and notes.
type DailyLog struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	LogDate  string `json:"log_date"`
	ItemName string `json:"item_name"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
}
