package menu

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrBadDateToken reports a date argument that is neither a keyword nor an
// ISO date. Check with errors.Is.
var ErrBadDateToken = errors.New("invalid date token")

// ParseDateToken resolves a user-supplied date token relative to now.
// An empty token or "today" is today, "tomorrow" is tomorrow, and anything
// else must be a YYYY-MM-DD literal. The accepted grammar is deliberately
// this narrow; lenient date parsing would let typos select the wrong day.
func ParseDateToken(token string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "", "today":
		return now, nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	}

	day, err := time.Parse("2006-01-02", strings.TrimSpace(token))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (use today, tomorrow, or YYYY-MM-DD)", ErrBadDateToken, token)
	}
	return day, nil
}

// IsDateToken reports whether token would be accepted by ParseDateToken.
// The command layer uses it to decide whether a leading argument is a date
// or the start of the canteen query.
func IsDateToken(token string) bool {
	_, err := ParseDateToken(token, time.Now())
	return err == nil
}
