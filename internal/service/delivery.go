package service

import (
	"strings"

	"myfooddesk/internal/domain"
)

// ResolveFee matches a free-text address against the configured zones and
// returns the flat fee of the first active zone with a keyword hit.
//
// Zone order is first-match-wins and must stay as configured; keywords are
// case-insensitive substrings. An empty address never matches.
func ResolveFee(address string, zones []domain.DeliveryZone) (float64, bool) {
	a := strings.ToLower(address)
	if a == "" {
		return 0, false
	}

	for _, z := range zones {
		if !z.IsActive {
			continue
		}
		for _, kw := range z.AreaKeywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			if strings.Contains(a, kw) {
				return z.Fee, true
			}
		}
	}
	return 0, false
}
