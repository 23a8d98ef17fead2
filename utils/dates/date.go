package dates

import "time"

const (
	DateFormat = "2006-01-02"
)

func DateToString(from time.Time, dateFormat string) string {
	return from.Format(dateFormat)
}

func StringToDate(from string, dateFormat string) (time.Time, error) {
	return time.Parse(dateFormat, from)
}
