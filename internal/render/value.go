package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NullText is what a NULL column renders as.
const NullText = "null"

// FormatValue stringifies a scanned driver value so it reads the way the
// server printed it. dbType is the column's database type name, upper case,
// as reported by the driver; it may be empty.
func FormatValue(v interface{}, dbType string) string {
	switch x := v.(type) {
	case nil:
		return NullText
	case []byte:
		return string(x)
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "t"
		}
		return "f"
	case time.Time:
		return formatTime(x, dbType)
	default:
		return fmt.Sprint(x)
	}
}

func formatTime(t time.Time, dbType string) string {
	switch strings.ToUpper(dbType) {
	case "DATE":
		return t.Format("2006-01-02")
	case "TIME":
		return t.Format("15:04:05")
	case "TIMETZ":
		return t.Format("15:04:05-07")
	case "TIMESTAMPTZ":
		return t.Format("2006-01-02 15:04:05-07")
	case "TIMESTAMP":
		return t.Format("2006-01-02 15:04:05")
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}
