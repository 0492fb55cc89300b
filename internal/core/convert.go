package core

// convert.go coerces document values to the value types of mapping rules.
//
// Values reach the engine from three places with different habits:
//   - project JSON (typed numbers and bools, occasionally numbers as text)
//   - wire documents (every scalar is text)
//   - spreadsheets (raw cell text, "true"/"false" literals, formula prefixes)
//
// The sentinel string "NaN" stands for a value that is intentionally absent.
// It survives every float coercion unchanged.

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/JonMunkholm/pilexchange/internal/document"
)

// NaN is the sentinel used on the wire for values that are intentionally absent.
const NaN = "NaN"

// numericRegex validates that a string is a valid numeric format after cleanup.
// Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// IsNaN reports whether v is the NaN sentinel (any letter case) or a float NaN.
func IsNaN(v any) bool {
	switch n := v.(type) {
	case string:
		return strings.EqualFold(strings.TrimSpace(n), NaN)
	case float64:
		return math.IsNaN(n)
	default:
		return false
	}
}

// IsNumeric reports whether v is a number or a string holding one.
func IsNumeric(v any) bool {
	switch n := v.(type) {
	case int64, int, float64:
		return true
	case string:
		return numericRegex.MatchString(CleanCell(n))
	default:
		return false
	}
}

// ToFloat converts numbers, numeric strings and bools to float64.
func ToFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case string:
		s := CleanCell(n)
		if !numericRegex.MatchString(s) {
			return 0, fmt.Errorf("invalid number %q", n)
		}
		return strconv.ParseFloat(s, 64)
	default:
		return 0, fmt.Errorf("invalid number: %s", document.KindOf(v))
	}
}

// ToInt converts integers, floats (truncated toward zero), numeric strings
// and bools to int64.
func ToInt(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case float64:
		return floatToInt(n)
	case string:
		s := CleanCell(n)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
		f, err := ToFloat(s)
		if err != nil {
			return 0, fmt.Errorf("invalid integer %q", n)
		}
		return floatToInt(f)
	default:
		return 0, fmt.Errorf("invalid integer: %s", document.KindOf(v))
	}
}

// floatToInt truncates f toward zero. Values outside the int64 range fail;
// 2^63 itself is out of range.
func floatToInt(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid integer %v", f)
	}
	if f < math.MinInt64 || f >= -math.MinInt64 {
		return 0, fmt.Errorf("integer out of range: %v", f)
	}
	return int64(f), nil
}

// ToBool converts bools, numbers and the usual text spellings to bool.
// Accepts true/false, yes/no, t/f, y/n, 1/0 (case-insensitive).
func ToBool(v any) (bool, error) {
	switch n := v.(type) {
	case bool:
		return n, nil
	case int64:
		return n != 0, nil
	case int:
		return n != 0, nil
	case float64:
		return n != 0, nil
	case string:
		switch strings.ToLower(CleanCell(n)) {
		case "true", "t", "yes", "y", "1":
			return true, nil
		case "false", "f", "no", "n", "0":
			return false, nil
		}
		return false, fmt.Errorf("invalid bool %q", n)
	default:
		return false, fmt.Errorf("invalid bool: %s", document.KindOf(v))
	}
}

// ToString formats a scalar as text.
func ToString(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case bool:
		return strconv.FormatBool(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case int:
		return strconv.Itoa(n)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case []byte:
		return string(n)
	default:
		return fmt.Sprint(v)
	}
}

// Coerce converts v to the value type t. Nil stays nil; the NaN sentinel
// is kept as the string "NaN" for float targets.
func Coerce(v any, t ValueType) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch t {
	case TypeNone:
		return v, nil
	case TypeString:
		if _, ok := v.(*document.Map); ok {
			return nil, fmt.Errorf("cannot convert object to string")
		}
		return ToString(v), nil
	case TypeFloat:
		if IsNaN(v) {
			return NaN, nil
		}
		return ToFloat(v)
	case TypeInt:
		return ToInt(v)
	case TypeBool:
		return ToBool(v)
	case TypeBytes:
		switch b := v.(type) {
		case []byte:
			return b, nil
		case string:
			return []byte(b), nil
		}
		return nil, fmt.Errorf("cannot convert %s to bytes", document.KindOf(v))
	case TypeDict:
		switch v.(type) {
		case *document.Map, []any:
			return v, nil
		}
		return nil, fmt.Errorf("cannot convert %s to dict", document.KindOf(v))
	default:
		return nil, fmt.Errorf("unsupported value type %s", t)
	}
}

// Round2 rounds f to two decimals using strconv's 'f' formatting, which
// rounds the exact binary value half to even. 1.005 is stored slightly
// below the tie and becomes 1.00; 0.125 is an exact tie and becomes 0.12.
func Round2(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 2, 64), 64)
	return r
}

// RoundValue rounds a numeric leaf (number or numeric string) to two
// decimals. Other values are returned unchanged with ok=false.
func RoundValue(v any) (out any, ok bool) {
	switch n := v.(type) {
	case float64:
		return Round2(n), true
	case int64, int:
		return v, true
	case string:
		if IsNaN(n) || !IsNumeric(n) {
			return v, false
		}
		f, err := ToFloat(n)
		if err != nil {
			return v, false
		}
		return Round2(f), true
	default:
		return v, false
	}
}

// CleanCell removes common spreadsheet artifacts from a cell value:
// - Trims whitespace
// - Removes Excel formula prefix (="...")
// - Removes surrounding quotes
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	// Remove leading '='
	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	return strings.Trim(s, `"'`)
}
