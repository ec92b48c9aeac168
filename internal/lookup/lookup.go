// Package lookup resolves details about a client address: its reverse DNS
// name and the country it geolocates to.
package lookup

import (
	"context"
	"errors"
	"net"
	"strings"
)

// ErrNotFound is returned when a lookup completes without a result
var ErrNotFound = errors.New("not found")

// Resolver performs reverse DNS resolution
type Resolver interface {
	Reverse(ctx context.Context, addr string) (string, error)
}

// Locator maps an address to a country name
type Locator interface {
	Country(ctx context.Context, addr string) (string, error)
}

// DNS resolves names with a net.Resolver
type DNS struct {
	resolver *net.Resolver
}

// NewDNS creates a resolver backed by the system resolver
func NewDNS() *DNS {
	return &DNS{resolver: net.DefaultResolver}
}

// Reverse returns the first PTR name of addr without the trailing dot
func (d *DNS) Reverse(ctx context.Context, addr string) (string, error) {
	names, err := d.resolver.LookupAddr(ctx, addr)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", ErrNotFound
	}
	return strings.TrimSuffix(names[0], "."), nil
}

// NoLocation is a Locator used when no geolocation database is configured
type NoLocation struct{}

func (NoLocation) Country(context.Context, string) (string, error) {
	return "", ErrNotFound
}
