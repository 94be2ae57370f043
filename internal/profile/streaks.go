package profile

import (
	"sort"
	"time"

	"github.com/albapepper/readme-svg/internal/format"
)

// ComputeStreaks returns the current and longest runs of consecutive days
// with at least one contribution. The current streak counts back from now;
// a day with no activity yet today does not break it if yesterday had some.
func ComputeStreaks(contribs map[time.Time]int, now time.Time) (current, longest int) {
	if len(contribs) == 0 {
		return 0, 0
	}

	normalized := make(map[time.Time]int, len(contribs))
	for t, c := range contribs {
		normalized[day(t)] += c
	}

	dates := make([]time.Time, 0, len(normalized))
	for d := range normalized {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	start := day(now)
	if normalized[start] <= 0 {
		start = start.AddDate(0, 0, -1)
	}
	for d := start; normalized[d] > 0; d = d.AddDate(0, 0, -1) {
		current++
	}

	for _, d := range dates {
		if normalized[d] <= 0 || normalized[d.AddDate(0, 0, -1)] > 0 {
			continue
		}
		length := 0
		for cur := d; normalized[cur] > 0; cur = cur.AddDate(0, 0, 1) {
			length++
		}
		if length > longest {
			longest = length
		}
	}

	return current, longest
}

// Summarize builds the contribution panel values from a per-day calendar
// covering windowDays days.
func Summarize(contribs map[time.Time]int, windowDays int, now time.Time) Contribution {
	current, longest := ComputeStreaks(contribs, now)
	total := 0
	for _, c := range contribs {
		total += c
	}
	avg := 0.0
	if windowDays > 0 {
		avg = float64(total) / float64(windowDays)
	}
	return Contribution{
		CurrentStreakDays:  current,
		LongestStreakDays:  longest,
		TotalContributions: total,
		AvgCommitsPerDay:   format.Decimal1(avg),
	}
}

func day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
