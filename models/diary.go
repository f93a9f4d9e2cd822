package models

import "time"

// TimeSlot is the part of the day a diary entry was written for.
// The set of values is closed: morning, lunch and evening.
type TimeSlot string

const (
	TimeSlotMorning TimeSlot = "morning"
	TimeSlotLunch   TimeSlot = "lunch"
	TimeSlotEvening TimeSlot = "evening"
)

// TimeSlots lists every valid slot in the order a day is rendered.
var TimeSlots = []TimeSlot{TimeSlotMorning, TimeSlotLunch, TimeSlotEvening}

// IsValid reports whether s is one of the known time slots.
func (s TimeSlot) IsValid() bool {
	switch s {
	case TimeSlotMorning, TimeSlotLunch, TimeSlotEvening:
		return true
	}
	return false
}

// Label returns the human-readable name of the slot used in transcripts.
func (s TimeSlot) Label() string {
	switch s {
	case TimeSlotMorning:
		return "Morning"
	case TimeSlotLunch:
		return "Afternoon"
	case TimeSlotEvening:
		return "Evening"
	}
	return string(s)
}

// MaxDiaryContentLength is the maximum number of characters a diary entry may hold.
const MaxDiaryContentLength = 1000

// DiaryEntry is a short note written by a user for a given time slot.
// CreatedAt is assigned by the database and never changes afterwards.
type DiaryEntry struct {
	ID        int64     `json:"diary_id"`
	UserID    int64     `json:"user_id"`
	Slot      TimeSlot  `json:"qtype"`
	Content   string    `json:"diary"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the DiaryEntry model.
func (d DiaryEntry) TableName() string {
	return "diary_entries"
}

// DiaryFilter narrows a diary listing. Zero-valued fields are not applied.
type DiaryFilter struct {
	UserID int64
	Slot   TimeSlot
	Start  time.Time
	End    time.Time
}

// DiaryUpdate describes a partial update of a diary entry.
// Only non-nil fields are written.
type DiaryUpdate struct {
	ID      int64     `json:"-"`
	UserID  int64     `json:"-"`
	Slot    *TimeSlot `json:"qtype,omitempty"`
	Content *string   `json:"diary,omitempty"`
}

// DailyEntries holds the entries of one calendar day keyed by slot.
// Slots without an entry are absent.
type DailyEntries struct {
	Date    time.Time
	Entries map[TimeSlot]string
}
