package usecase

import (
	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/sqsutil"
)

// SelectVenue picks the venue to settle on given the available venues and their quotes.
//
// If Direct and Pool are both available with strictly positive outputs, the larger output
// wins and ties go to Direct. Otherwise a single available venue is selected regardless of
// its output. Returns false when the choice is left to the user.
func SelectVenue(available []domain.Venue, quotes map[domain.Venue]domain.Quote) (domain.Venue, bool) {
	directOutput := outputOf(quotes, domain.VenueDirect)
	poolOutput := outputOf(quotes, domain.VenuePool)

	isBothAvailable := domain.ContainsVenue(available, domain.VenueDirect) && domain.ContainsVenue(available, domain.VenuePool)
	isBothPositive := sqsutil.Gt(directOutput, zero) && sqsutil.Gt(poolOutput, zero)

	if isBothAvailable && isBothPositive {
		if sqsutil.Gte(directOutput, poolOutput) {
			return domain.VenueDirect, true
		}
		return domain.VenuePool, true
	}

	if len(available) == 1 {
		return available[0], true
	}

	return domain.VenueNone, false
}

func outputOf(quotes map[domain.Venue]domain.Quote, venue domain.Venue) string {
	quote, ok := quotes[venue]
	if !ok || quote.OutputAmount == "" {
		return zero
	}
	return quote.OutputAmount
}
