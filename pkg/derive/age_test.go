package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/podiumlabs/podium/pkg/normalize"
)

func TestAge(t *testing.T) {
	gamesStart := time.Date(2024, time.July, 26, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		born normalize.Date
		want int
		ok   bool
	}{
		{
			name: "birthday already passed",
			born: normalize.ParseDate("1999-06-26"),
			want: 25,
			ok:   true,
		},
		{
			name: "birthday on the start day",
			born: normalize.ParseDate("2000-07-26"),
			want: 24,
			ok:   true,
		},
		{
			name: "birthday still ahead",
			born: normalize.ParseDate("1999-12-21"),
			want: 24,
			ok:   true,
		},
		{
			name: "unknown birth date",
			born: normalize.Unknown,
			ok:   false,
		},
		{
			name: "year-only birth date",
			born: normalize.ParseDate("1926"),
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Age(tt.born, gamesStart)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
