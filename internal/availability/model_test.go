package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	cases := map[string]string{
		"08:00":    "08:00:00",
		"8:05":     "08:05:00",
		"22:30:15": "22:30:15",
		"00:00":    "00:00:00",
	}
	for in, want := range cases {
		got, err := ParseClock(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "25:00", "nope", "12:61", "12h30"} {
		_, err := ParseClock(in)
		assert.ErrorIs(t, err, ErrInvalidClock, "%q should not parse", in)
	}
}
