package lookup

import (
	"context"
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

// GeoIP looks up countries in a MaxMind GeoIP2/GeoLite2 country database
type GeoIP struct {
	reader *geoip2.Reader
	lang   string
}

// OpenGeoIP opens the database at path
func OpenGeoIP(path string) (*GeoIP, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open geoip database: %w", err)
	}
	return &GeoIP{reader: reader, lang: "en"}, nil
}

// Country returns the English country name of addr
func (g *GeoIP) Country(ctx context.Context, addr string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ip := net.ParseIP(addr)
	if ip == nil {
		return "", fmt.Errorf("invalid address %q", addr)
	}
	record, err := g.reader.Country(ip)
	if err != nil {
		return "", err
	}
	name := record.Country.Names[g.lang]
	if name == "" {
		return "", ErrNotFound
	}
	return name, nil
}

// Close releases the database
func (g *GeoIP) Close() error {
	return g.reader.Close()
}
