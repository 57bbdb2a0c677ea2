package usecase

import (
	"sync"

	"github.com/osmosis-labs/swapquery/domain"
)

// quoteCache memoizes quotes per exact input triple, one entry per venue.
// Entries are replaced per venue and never evicted; the cache lives as long as its session.
type quoteCache struct {
	mu     sync.RWMutex
	quotes map[domain.QuoteKey][]domain.Quote
}

func newQuoteCache() *quoteCache {
	return &quoteCache{
		quotes: make(map[domain.QuoteKey][]domain.Quote),
	}
}

// Record stores the quote, replacing any prior quote for the same triple and venue.
// Quotes of other venues or triples are left untouched.
func (c *quoteCache) Record(quote domain.Quote) {
	c.mu.Lock()
	defer c.mu.Unlock()

	quotes := c.quotes[quote.QuoteKey]
	for i := range quotes {
		if quotes[i].Venue == quote.Venue {
			quotes[i] = quote
			return
		}
	}

	c.quotes[quote.QuoteKey] = append(quotes, quote)
}

// Lookup returns the quote recorded for key and venue, or a zero quote if there is none.
func (c *quoteCache) Lookup(key domain.QuoteKey, venue domain.Venue) domain.Quote {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, quote := range c.quotes[key] {
		if quote.Venue == venue {
			return quote
		}
	}

	return domain.ZeroQuote(key, venue)
}

// LookupAll returns every quote recorded for key by venue.
func (c *quoteCache) LookupAll(key domain.QuoteKey) map[domain.Venue]domain.Quote {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make(map[domain.Venue]domain.Quote, len(c.quotes[key]))
	for _, quote := range c.quotes[key] {
		result[quote.Venue] = quote
	}
	return result
}

// Len returns the number of recorded quotes over all triples.
func (c *quoteCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, quotes := range c.quotes {
		count += len(quotes)
	}
	return count
}
