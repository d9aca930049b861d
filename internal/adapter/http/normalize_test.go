package httpadapter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpulse/internal/core/domain"
)

func TestNumber(t *testing.T) {
	for _, tc := range []struct {
		in   any
		want float64
		ok   bool
	}{
		{json.Number("12.5"), 12.5, true},
		{float64(3), 3, true},
		{"1,234.56", 1234.56, true},
		{" $99 ", 99, true},
		{"4.2%", 4.2, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"NaN", 0, false},
		{true, 0, false},
		{nil, 0, false},
	} {
		got, ok := number(tc.in)
		assert.Equal(t, tc.ok, ok, "%v", tc.in)
		assert.Equal(t, tc.want, got, "%v", tc.in)
	}
}

func TestNormalizePatchVariants(t *testing.T) {
	p := normalizePatch(map[string]any{
		"Amount Spent":     "250.75",
		"Impressions":      json.Number("12000"),
		"Link Clicks":      "310",
		"Results":          "12",
		"Conversion Value": "1,020.00",
		"dayOfWeek":        json.Number("2"),
		"hourOfDay":        json.Number("24"),
	})

	require.NotNil(t, p.Spend)
	assert.Equal(t, 250.75, *p.Spend)
	assert.Equal(t, int64(12000), *p.Impressions)
	assert.Equal(t, int64(310), *p.Clicks)
	assert.Equal(t, int64(12), *p.Conversions)
	assert.Equal(t, 1020.0, *p.ConversionValue)
	assert.Equal(t, 2, *p.DayOfWeek)
	assert.Nil(t, p.HourOfDay)
}

func TestNormalizePatchLeavesAbsentFieldsUnset(t *testing.T) {
	p := normalizePatch(map[string]any{"spend": "free", "other": 1})
	assert.True(t, p.Empty())
}

func TestNormalizePatchOutOfRangeCounts(t *testing.T) {
	p := normalizePatch(map[string]any{
		"impressions": json.Number("1e30"),
		"clicks":      json.Number("-1e30"),
		"conversions": json.Number("9.3e18"),
		"spend":       json.Number("1e30"),
	})
	assert.Nil(t, p.Impressions)
	assert.Nil(t, p.Clicks)
	assert.Nil(t, p.Conversions)
	require.NotNil(t, p.Spend)
	assert.Equal(t, 1e30, *p.Spend)
}

func TestNormalizeRow(t *testing.T) {
	id, date, p := normalizeRow(map[string]any{
		"Campaign Name": "camp9",
		"Day":           "2024-03-01",
		"cost":          "5",
	})
	assert.Equal(t, "camp9", id)
	assert.Equal(t, domain.MustParseDate("2024-03-01"), date)
	assert.Equal(t, 5.0, *p.Spend)

	_, date, _ = normalizeRow(map[string]any{"campaign": "x", "date": "03/01/2024"})
	assert.True(t, date.IsZero())
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"a":1}`)
	good := sign(body, "k")

	assert.NoError(t, verifySignature(body, good, "k"))
	assert.NoError(t, verifySignature(body, "sha256="+good, "k"))
	assert.Error(t, verifySignature(body, good, "other"))
	assert.Error(t, verifySignature(body, "", "k"))
	assert.Error(t, verifySignature(body, "zz", "k"))
}
