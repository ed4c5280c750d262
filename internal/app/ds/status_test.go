package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "In-Progress", NewInProgress().String())
	assert.Equal(t, "Priced: 4000", NewPriced(4000).String())
	assert.Equal(t, "Priced: 0", NewPriced(0).String())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Status
	}{
		{"in progress", "In-Progress", Status{Kind: StatusInProgress}},
		{"priced", "Priced: 4000", Status{Kind: StatusPriced, Total: 4000}},
		{"priced zero", "Priced: 0", Status{Kind: StatusPriced, Total: 0}},
		{"unknown", "Отклонена", Status{Kind: StatusUnknown, Raw: "Отклонена"}},
		{"priced garbage", "Priced: abc", Status{Kind: StatusUnknown, Raw: "Priced: abc"}},
		{"empty", "", Status{Kind: StatusUnknown, Raw: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStatus(tt.raw))
		})
	}
}

func TestStatusRoundTrip(t *testing.T) {
	for _, s := range []Status{NewInProgress(), NewPriced(1), NewPriced(123456789)} {
		assert.Equal(t, s, ParseStatus(s.String()))
	}
}

func TestStatusIsActive(t *testing.T) {
	assert.True(t, NewInProgress().IsActive())
	assert.False(t, NewPriced(100).IsActive())
	// Нераспознанный статус считается отработанным
	assert.False(t, ParseStatus("что-то странное").IsActive())
}
