package netutil

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

// NewHTTPTransport creates a new 'http.Transport' using the given TLS config and timeouts, falling back to sane
// defaults for any timeout which isn't set.
func NewHTTPTransport(tlsConfig *tls.Config, timeouts HTTPTimeouts) *http.Transport {
	dialer := &net.Dialer{
		Timeout:   valueOrDefault(timeouts.Dialer, defaultDialerTimeout),
		KeepAlive: valueOrDefault(timeouts.KeepAlive, defaultDialerKeepAlive),
	}

	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       valueOrDefault(timeouts.TransportIdleConn, defaultIdleConnTimeout),
		ExpectContinueTimeout: valueOrDefault(timeouts.TransportContinue, defaultContinueTimeout),
		ResponseHeaderTimeout: valueOrDefault(timeouts.TransportResponseHeader, defaultResponseHeaderTimeout),
		TLSHandshakeTimeout:   valueOrDefault(timeouts.TransportTLSHandshake, defaultTLSHandshakeTimeout),
		TLSClientConfig:       tlsConfig,
	}
}

func valueOrDefault(value *time.Duration, fallback time.Duration) time.Duration {
	if value == nil {
		return fallback
	}

	return *value
}
