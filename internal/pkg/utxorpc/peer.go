package utxorpc

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Peer is a parsed sync service endpoint.
type Peer struct {
	// Host is host:port without scheme.
	Host string
	// BaseURL always carries a scheme, http when none was given.
	BaseURL string
}

// ParsePeer accepts "host:port", "http://host:port" or "https://host:port".
func ParsePeer(raw string) (Peer, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Peer{}, errors.New("peer address is empty")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return Peer{}, fmt.Errorf("parse peer address: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Peer{}, fmt.Errorf("peer scheme %q not supported, use http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return Peer{}, errors.New("peer address missing host")
	}

	return Peer{
		Host:    parsed.Host,
		BaseURL: parsed.Scheme + "://" + parsed.Host,
	}, nil
}
