package views

import (
	"fmt"
	"strings"
	"time"

	"stellar-cargo/internal/models"
)

type TimeRange string

const (
	RangeAll   TimeRange = "all"
	RangeToday TimeRange = "today"
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
)

func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(strings.ToLower(s)) {
	case "", RangeAll:
		return RangeAll, nil
	case RangeToday:
		return RangeToday, nil
	case RangeWeek:
		return RangeWeek, nil
	case RangeMonth:
		return RangeMonth, nil
	}
	return RangeAll, fmt.Errorf("unknown time range %q", s)
}

type ActivityFilter struct {
	Query string
	// Action keeps entries whose action contains it, case-sensitively.
	Action string
	Range  TimeRange
	// Now anchors Range; its location decides what "today" means.
	Now time.Time
}

func Activity(items []models.ActivityLog, f ActivityFilter) []models.ActivityLog {
	out := make([]models.ActivityLog, 0, len(items))
	for _, l := range items {
		if !containsFold(f.Query, l.Action, l.Details, l.UserID) {
			continue
		}
		if !matchesAll(f.Action) && !strings.Contains(l.Action, f.Action) {
			continue
		}
		if !inRange(l.Timestamp, f.Range, f.Now) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func inRange(ts time.Time, r TimeRange, now time.Time) bool {
	switch r {
	case RangeToday:
		local := ts.In(now.Location())
		y1, m1, d1 := local.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case RangeWeek:
		return !ts.Before(now.AddDate(0, 0, -7))
	case RangeMonth:
		return !ts.Before(now.AddDate(0, -1, 0))
	}
	return true
}

// UniqueActions returns "all" followed by each distinct action in first-seen order.
func UniqueActions(items []models.ActivityLog) []string {
	out := []string{All}
	seen := make(map[string]struct{}, len(items))
	for _, l := range items {
		if _, ok := seen[l.Action]; ok {
			continue
		}
		seen[l.Action] = struct{}{}
		out = append(out, l.Action)
	}
	return out
}
