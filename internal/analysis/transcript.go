package analysis

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-diary-keeper/models"
)

// GroupByDay groups entries by their calendar date in loc and returns the
// days in ascending order.
//
// When a day holds several entries for the same slot, the one created last
// wins; entries with equal timestamps are resolved by input order.
func GroupByDay(entries []models.DiaryEntry, loc *time.Location) []models.DailyEntries {
	if loc == nil {
		loc = time.UTC
	}

	type slotPick struct {
		createdAt time.Time
		content   string
	}

	days := make(map[time.Time]map[models.TimeSlot]slotPick)
	for _, entry := range entries {
		local := entry.CreatedAt.In(loc)
		date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

		slots, ok := days[date]
		if !ok {
			slots = make(map[models.TimeSlot]slotPick, len(models.TimeSlots))
			days[date] = slots
		}

		if prev, seen := slots[entry.Slot]; seen && entry.CreatedAt.Before(prev.createdAt) {
			continue
		}
		slots[entry.Slot] = slotPick{createdAt: entry.CreatedAt, content: entry.Content}
	}

	result := make([]models.DailyEntries, 0, len(days))
	for date, slots := range days {
		day := models.DailyEntries{Date: date, Entries: make(map[models.TimeSlot]string, len(slots))}
		for slot, pick := range slots {
			day.Entries[slot] = pick.content
		}
		result = append(result, day)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result
}

// RenderTranscript renders grouped days as numbered blocks with one labelled
// line per present slot:
//
//	Day 1:
//	Morning: ...
//	Evening: ...
func RenderTranscript(days []models.DailyEntries) string {
	var b strings.Builder

	for i, day := range days {
		b.WriteString("Day ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(":\n")

		for _, slot := range models.TimeSlots {
			content, ok := day.Entries[slot]
			if !ok {
				continue
			}
			b.WriteString(slot.Label())
			b.WriteString(": ")
			b.WriteString(content)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	return b.String()
}
