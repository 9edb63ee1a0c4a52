package provider

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var isoDurationRe = regexp.MustCompile(`^P(?:(\d+)W)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// parseISODuration converts ISO-8601 durations like "PT1H2M3S" or "P1DT30M" to whole seconds
func parseISODuration(s string) (int64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	m := isoDurationRe.FindStringSubmatch(s)
	if m == nil || s == "P" || s == "PT" {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
	}

	var total float64
	units := []float64{7 * 24 * 3600, 24 * 3600, 3600, 60, 1}
	for i, unit := range units {
		if m[i+1] == "" {
			continue
		}
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid ISO-8601 duration %q: %w", s, err)
		}
		total += v * unit
	}
	return int64(math.Round(total)), nil
}

// parseClockDuration converts "HH:MM:SS", "MM:SS" or plain seconds (itunes:duration) to whole seconds
func parseClockDuration(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	var total float64
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		total = total*60 + v
	}
	return int64(math.Round(total)), nil
}

// durationPtr returns nil for unparsable or empty values
func durationPtr(s string, parse func(string) (int64, error)) *int64 {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := parse(s)
	if err != nil {
		return nil
	}
	return &v
}
