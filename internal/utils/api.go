package utils

import (
	"math"
	"net/url"
	"strconv"
)

// ParseOptionalFloat retrieves a nullable numeric value from the provided
// URL query parameters. A missing or empty value returns nil; a present
// but malformed value returns NaN, which the scorer treats as "skip this
// rule" rather than an error.
func ParseOptionalFloat(params url.Values, key string) *float64 {
	val := params.Get(key)
	if val == "" {
		return nil
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		nan := math.NaN()
		return &nan
	}
	return &f
}

// ParseLenientFloat retrieves a numeric value that defaults to 0 when the
// key is absent and to NaN when the value is malformed.
func ParseLenientFloat(params url.Values, key string) float64 {
	val := params.Get(key)
	if val == "" {
		return 0
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// ParseLenientInt retrieves an integer value, defaulting to 0 when the key
// is absent or the value is malformed.
func ParseLenientInt(params url.Values, key string) int {
	n, err := strconv.Atoi(params.Get(key))
	if err != nil {
		return 0
	}
	return n
}

// ParseIntParam retrieves an int64 value from the provided URL query
// parameters. If the key is not present it returns the fallback; if the
// value is invalid it returns the fallback and updates the fieldErrors map.
func ParseIntParam(params url.Values, key string, fallback int64, fieldErrors map[string][]string) (int64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return fallback, fieldErrors
	}

	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil || n < 0 {
		fieldErrors[key] = append(fieldErrors[key], "Invalid field value for field \""+key+"\".")
		return fallback, fieldErrors
	}
	return n, fieldErrors
}
