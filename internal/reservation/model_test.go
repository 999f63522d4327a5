package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		token string
		want  Status
	}{
		{"pending", StatusPending},
		{"PENDING", StatusPending},
		{" Confirmed ", StatusConfirmed},
		{"cancelled", StatusCancelled},
		{"completed", StatusCompleted},
	}
	for _, tc := range cases {
		got, err := ParseStatus(tc.token)
		assert.NoError(t, err, tc.token)
		assert.Equal(t, tc.want, got, tc.token)
	}

	for _, token := range []string{"", "approved", "canceled", "done"} {
		_, err := ParseStatus(token)
		assert.ErrorIs(t, err, ErrInvalidStatus, "%q should not parse", token)
	}
}
