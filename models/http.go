package models

import "time"

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdateRequest is the body of PUT /api/user/profile.
// Both fields are required.
type ProfileUpdateRequest struct {
	Nickname string `json:"nickname"`
	Avatar   Avatar `json:"avatar"`
}

// DiaryRequest is the body of POST /api/diary and PUT /api/diary/{id}.
// On update both fields are optional.
type DiaryRequest struct {
	Slot    *TimeSlot `json:"qtype,omitempty"`
	Content *string   `json:"diary,omitempty"`
}

// ReportPeriod identifies a calendar month.
type ReportPeriod struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Bounds returns the first and the last instant of the month in loc.
// Both bounds are inclusive.
func (p ReportPeriod) Bounds(loc *time.Location) (time.Time, time.Time) {
	start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}
