package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// serialEpoch is the spreadsheet serial-date origin. Day 1 is 1899-12-31 in
// this convention, which makes serial 44197 come out as 2021-01-01.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// maxSerialDays caps serial values at roughly year 2173 to avoid treating
// stray large numbers as dates.
const maxSerialDays = 100_000

// dateLayouts are the accepted string date forms, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"1/2/2006",
	"01/02/2006",
}

// parseStartDate normalizes a job-start cell that may hold either an
// ISO-style date string or a spreadsheet serial number.
func parseStartDate(cell string) (time.Time, error) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date cell")
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial <= 0 || serial > maxSerialDays || math.IsNaN(serial) {
			return time.Time{}, fmt.Errorf("serial date %v out of range", serial)
		}
		// The fractional part is a time of day; reports only need the date.
		return serialEpoch.AddDate(0, 0, int(serial)), nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
