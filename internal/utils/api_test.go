package utils

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalFloat(t *testing.T) {
	params := url.Values{}
	params.Set("age", "27.5")
	params.Set("fare", "not-a-number")

	age := ParseOptionalFloat(params, "age")
	require.NotNil(t, age)
	assert.Equal(t, 27.5, *age)

	fare := ParseOptionalFloat(params, "fare")
	require.NotNil(t, fare)
	assert.True(t, math.IsNaN(*fare), "malformed value should parse to NaN")

	assert.Nil(t, ParseOptionalFloat(params, "missing"))
}

func TestParseLenientFloat(t *testing.T) {
	params := url.Values{}
	params.Set("sibsp", "2")
	params.Set("parch", "x")

	assert.Equal(t, 2.0, ParseLenientFloat(params, "sibsp"))
	assert.True(t, math.IsNaN(ParseLenientFloat(params, "parch")))
	assert.Equal(t, 0.0, ParseLenientFloat(params, "missing"))
}

func TestParseLenientInt(t *testing.T) {
	params := url.Values{}
	params.Set("pclass", "3")
	params.Set("bad", "three")

	assert.Equal(t, 3, ParseLenientInt(params, "pclass"))
	assert.Equal(t, 0, ParseLenientInt(params, "bad"))
	assert.Equal(t, 0, ParseLenientInt(params, "missing"))
}

func TestParseIntParam(t *testing.T) {
	params := url.Values{}
	params.Set("limit", "50")
	params.Set("offset", "abc")

	limit, fieldErrors := ParseIntParam(params, "limit", 100, nil)
	assert.Equal(t, int64(50), limit)
	assert.Empty(t, fieldErrors)

	offset, fieldErrors := ParseIntParam(params, "offset", 0, nil)
	assert.Equal(t, int64(0), offset)
	assert.Contains(t, fieldErrors, "offset")

	fallback, fieldErrors := ParseIntParam(params, "missing", 100, nil)
	assert.Equal(t, int64(100), fallback)
	assert.Empty(t, fieldErrors)
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("42"))
	assert.Error(t, ValidateID(""))
	assert.Error(t, ValidateID("abc"))
	assert.Error(t, ValidateID("12; DROP TABLE passengers"))
	assert.Error(t, ValidateID("1234567890123"))
}
