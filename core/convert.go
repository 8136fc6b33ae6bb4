package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateTimeLayouts lists the layouts ToTime accepts for string input, in order.
var DateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ToString converts a hydrated value to string. nil converts to "".
func ToString(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case time.Time:
		return v.Format(time.RFC3339), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return fmt.Sprint(v), nil
	}
}

// ToInt64 converts a hydrated value to int64. nil and "" convert to 0.
func ToInt64(v any) (int64, error) {
	switch v := v.(type) {
	case nil:
		return 0, nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("core: %d overflows int64", v)
		}
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("core: %v is not an integer", v)
		}
		return int64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case []byte:
		return ToInt64(string(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, nil
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("core: %q is not a number", v)
		}
		return ToInt64(f)
	default:
		return 0, fmt.Errorf("core: cannot convert %T to int64", v)
	}
}

// ToFloat64 converts a hydrated value to float64. nil and "" convert to 0.
func ToFloat64(v any) (float64, error) {
	switch v := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	case []byte:
		return ToFloat64(string(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("core: %q is not a number", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("core: cannot convert %T to float64", v)
	}
}

// ToBool converts a hydrated value to bool. Checkbox values such as "on"
// are accepted; nil and "" convert to false.
func ToBool(v any) (bool, error) {
	switch v := v.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	case int:
		return v != 0, nil
	case float64:
		return v != 0, nil
	case []byte:
		return ToBool(string(v))
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "", "0", "false", "off", "no":
			return false, nil
		case "1", "true", "on", "yes":
			return true, nil
		}
		return false, fmt.Errorf("core: %q is not a boolean", v)
	default:
		return false, fmt.Errorf("core: cannot convert %T to bool", v)
	}
}

// ToTime converts a hydrated value to time.Time. nil and "" convert to the zero time.
func ToTime(v any) (time.Time, error) {
	switch v := v.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return v, nil
	case []byte:
		return ToTime(string(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, nil
		}
		for _, layout := range DateTimeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("core: %q is not a date", v)
	default:
		return time.Time{}, fmt.Errorf("core: cannot convert %T to time.Time", v)
	}
}
