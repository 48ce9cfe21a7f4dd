package service_test

import (
	"testing"

	"myfooddesk/internal/domain"
	"myfooddesk/internal/service"

	"github.com/stretchr/testify/assert"
)

func testZones() []domain.DeliveryZone {
	return []domain.DeliveryZone{
		{ID: 1, ZoneName: "Bangna", Fee: 40, IsActive: true, AreaKeywords: []string{"bangna", "bearing"}},
		{ID: 2, ZoneName: "Onnut", Fee: 60, IsActive: true, AreaKeywords: []string{"onnut", "on nut"}},
		{ID: 3, ZoneName: "Far East", Fee: 120, IsActive: false, AreaKeywords: []string{"minburi"}},
	}
}

func TestResolveFee(t *testing.T) {
	tests := []struct {
		name        string
		address     string
		expectedFee float64
		expectedOK  bool
	}{
		{"keyword_match", "99/1 Bangna-Trad Rd", 40, true},
		{"case_insensitive", "BANGNA tower", 40, true},
		{"second_zone", "Soi On Nut 17", 60, true},
		{"no_match", "Nowhere Street 1", 0, false},
		{"empty_address", "", 0, false},
		{"inactive_zone_skipped", "Minburi market", 0, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			fee, ok := service.ResolveFee(testCase.address, testZones())
			assert.Equal(t, testCase.expectedOK, ok)
			assert.Equal(t, testCase.expectedFee, fee)
		})
	}
}

// When an address matches keywords in more than one zone, the zone listed
// first wins regardless of fee.
func TestResolveFee_FirstMatchWins(t *testing.T) {
	zones := []domain.DeliveryZone{
		{ID: 1, ZoneName: "A", Fee: 40, IsActive: true, AreaKeywords: []string{"soi"}},
		{ID: 2, ZoneName: "B", Fee: 90, IsActive: true, AreaKeywords: []string{"soi"}},
	}
	fee, ok := service.ResolveFee("Soi 5", zones)
	assert.True(t, ok)
	assert.Equal(t, 40.0, fee)
}

func TestResolveFee_BlankKeywordsIgnored(t *testing.T) {
	zones := []domain.DeliveryZone{
		{ID: 1, ZoneName: "A", Fee: 40, IsActive: true, AreaKeywords: []string{"", "  ", "bangna"}},
	}

	fee, ok := service.ResolveFee("bangna", zones)
	assert.True(t, ok)
	assert.Equal(t, 40.0, fee)

	// A blank keyword must never act as a match-everything wildcard.
	_, ok = service.ResolveFee("somewhere else", zones)
	assert.False(t, ok)
}
