package isohunt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAge(t *testing.T) {
	valid := map[string]AgeFilter{
		"":      AgeAny,
		"0":     AgeAny,
		"any":   AgeAny,
		"1":     AgeDay,
		"Day":   AgeDay,
		"7":     AgeWeek,
		"week":  AgeWeek,
		"30":    AgeMonth,
		"month": AgeMonth,
		"365":   AgeYear,
		" year": AgeYear,
	}
	for in, expected := range valid {
		got, err := ParseAge(in)
		assert.NoError(t, err, in)
		assert.Equal(t, expected, got, in)
	}
	for _, in := range []string{"2", "-1", "fortnight", "7d"} {
		_, err := ParseAge(in)
		assert.Error(t, err, in)
	}
}

func TestNewQuery(t *testing.T) {
	q, err := NewQuery("ubuntu", AgeMonth)
	assert.NoError(t, err)
	assert.Equal(t, "ubuntu", q.Text)
	assert.Equal(t, AgeMonth, q.MaxAge)

	_, err = NewQuery("ubuntu", AgeFilter(3))
	assert.Error(t, err)

	q, err = NewQuery("", AgeAny)
	assert.NoError(t, err)
	assert.Equal(t, `""`, q.String())
}

func TestAgeFilter_String(t *testing.T) {
	assert.Equal(t, "week", AgeWeek.String())
	assert.Equal(t, "12", AgeFilter(12).String())
}
