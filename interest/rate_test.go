package interest

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRate(t *testing.T) {
	cases := []struct {
		days string
		want string
	}{
		{"0", "1.2375"},
		{"30", "1.2375"},
		{"30.5", "1.35"},
		{"31", "1.35"},
		{"60", "1.35"},
		{"90", "1.5"},
		{"120", "1.575"},
		{"121", "1.65"},
		{"180", "1.65"},
		{"270", "1.725"},
		{"365", "1.8"},
		{"365.01", "0"},
		{"400", "0"},
	}
	for _, tc := range cases {
		got := Rate(decimal.RequireFromString(tc.days))
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "days=%s got=%s want=%s", tc.days, got, tc.want)
	}
}
