package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dynamicDatePrefix = "$date:"

// ParseDynamicDate resolves "$date:format:unit:offset" against base.
// Example: "$date:day:day:-1" -> yesterday as "2006-01-02". Other strings
// are returned unchanged.
func ParseDynamicDate(expression string, base time.Time) (string, error) {
	if !strings.HasPrefix(expression, dynamicDatePrefix) {
		return expression, nil
	}

	parts := strings.Split(strings.TrimPrefix(expression, dynamicDatePrefix), ":")
	if len(parts) != 3 {
		return "", fmt.Errorf("invalid dynamic date format: %s", expression)
	}
	format, unit := parts[0], parts[1]
	offset, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", fmt.Errorf("invalid offset in dynamic date: %s", expression)
	}

	var t time.Time
	switch unit {
	case "day":
		t = base.AddDate(0, 0, offset)
	case "month":
		t = base.AddDate(0, offset, 0)
	case "year":
		t = base.AddDate(offset, 0, 0)
	default:
		return "", fmt.Errorf("unsupported unit in dynamic date: %s", unit)
	}
	return formatDate(t, format)
}

// formatDate supports a few named layouts plus the unpadded month ("m") and
// day ("d") numbers used in report file names.
func formatDate(t time.Time, format string) (string, error) {
	switch format {
	case "day":
		return t.Format("2006-01-02"), nil
	case "month":
		return t.Format("2006-01"), nil
	case "year":
		return t.Format("2006"), nil
	case "datetime":
		return t.Format("2006-01-02 15:04:05"), nil
	case "compact":
		return t.Format("20060102"), nil
	case "m":
		return strconv.Itoa(int(t.Month())), nil
	case "d":
		return strconv.Itoa(t.Day()), nil
	}
	return "", fmt.Errorf("unsupported format in dynamic date: %s", format)
}
