package domain

import (
	"fmt"
	"strings"

	"github.com/osmosis-labs/osmosis/osmoutils"
)

// Venue is the execution venue a swap settles on.
// The zero value means no venue is selected.
type Venue int

const (
	VenueNone Venue = iota
	// VenueDirect settles against the on-chain exchange rate oracle.
	VenueDirect
	// VenuePool settles against a constant-product pool.
	VenuePool
	// VenueRouted settles over two hops through the bridge asset.
	VenueRouted
)

const (
	venueDirectName = "Direct"
	venuePoolName   = "Pool"
	venueRoutedName = "Routed"
)

// AllVenues lists every selectable venue in resolution order.
var AllVenues = []Venue{VenueDirect, VenuePool, VenueRouted}

// String implements fmt.Stringer.
func (v Venue) String() string {
	switch v {
	case VenueDirect:
		return venueDirectName
	case VenuePool:
		return venuePoolName
	case VenueRouted:
		return venueRoutedName
	default:
		return ""
	}
}

// IsSelected returns true if v is one of the concrete venues.
func (v Venue) IsSelected() bool {
	return v == VenueDirect || v == VenuePool || v == VenueRouted
}

// ParseVenue parses a case-insensitive venue name. Empty input parses to VenueNone.
func ParseVenue(name string) (Venue, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return VenueNone, nil
	case strings.ToLower(venueDirectName):
		return VenueDirect, nil
	case strings.ToLower(venuePoolName):
		return VenuePool, nil
	case strings.ToLower(venueRoutedName):
		return VenueRouted, nil
	default:
		return VenueNone, fmt.Errorf("unknown venue (%s)", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Venue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Venue) UnmarshalText(text []byte) error {
	parsed, err := ParseVenue(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ContainsVenue returns true if venue is in venues.
func ContainsVenue(venues []Venue, venue Venue) bool {
	return osmoutils.Contains(venues, venue)
}
