package geo

import (
	"net"

	"github.com/oschwald/maxminddb-golang"
)

type Reader struct {
	db *maxminddb.Reader
}

// Open opens a MaxMind .mmdb file. Returns a no-op Reader if path is empty.
func Open(path string) (*Reader, error) {
	if path == "" {
		return &Reader{}, nil
	}
	db, err := maxminddb.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{db: db}, nil
}

func (r *Reader) Close() {
	if r != nil && r.db != nil {
		r.db.Close()
	}
}

// Country returns the ISO country code for ip, or "" when no database is
// loaded or the address cannot be resolved.
func (r *Reader) Country(ipStr string) string {
	if r == nil || r.db == nil {
		return ""
	}
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return ""
	}

	var record struct {
		Country struct {
			ISOCode string `maxminddb:"iso_code"`
		} `maxminddb:"country"`
	}
	if err := r.db.Lookup(ip, &record); err != nil {
		return ""
	}
	return record.Country.ISOCode
}
