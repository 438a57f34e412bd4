package highlight

import (
	"fmt"
	"strconv"
	"strings"
)

const importantMarker = "!important"

// ParseColor normalizes a CSS color to lower-case "#rrggbb".
// Accepted inputs are "#rgb", "#rrggbb" and "rgb(r, g, b)", optionally followed by
// "!important", which is reported separately.
func ParseColor(raw string) (hex string, important bool, err error) {
	s := strings.TrimSpace(raw)
	if before, ok := strings.CutSuffix(s, importantMarker); ok {
		important = true
		s = strings.TrimSpace(before)
	}
	switch {
	case s == "":
		return "", important, fmt.Errorf("empty color")
	case strings.HasPrefix(s, "#"):
		hex, err = parseHex(s[1:])
	case strings.HasPrefix(strings.ToLower(s), "rgb(") && strings.HasSuffix(s, ")"):
		hex, err = parseRGB(s[4 : len(s)-1])
	default:
		err = fmt.Errorf("unsupported color %q", raw)
	}
	if err != nil {
		return "", important, err
	}
	return hex, important, nil
}

func parseHex(digits string) (string, error) {
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return "", fmt.Errorf("invalid hex color #%s", digits)
		}
	}
	digits = strings.ToLower(digits)
	switch len(digits) {
	case 3:
		return "#" + string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]}), nil
	case 6:
		return "#" + digits, nil
	default:
		return "", fmt.Errorf("invalid hex color #%s", digits)
	}
}

func parseRGB(args string) (string, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return "", fmt.Errorf("rgb() needs three components, got %d", len(parts))
	}
	var b strings.Builder
	b.WriteByte('#')
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return "", fmt.Errorf("invalid rgb component %q", strings.TrimSpace(p))
		}
		fmt.Fprintf(&b, "%02x", v)
	}
	return b.String(), nil
}
