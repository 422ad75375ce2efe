// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509fetch

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/tdslot/cert-tree/src/internal/helper/gc"
	x509certs "github.com/tdslot/cert-tree/src/internal/x509/certs"
)

var (
	// ErrNoCertificates indicates the endpoint presented no certificates.
	ErrNoCertificates = errors.New("x509fetch: no certificates received from server")

	// ErrInvalidURL indicates the target could not be parsed into a host.
	ErrInvalidURL = errors.New("x509fetch: invalid target URL")
)

// pemCertMarker identifies PEM certificate payloads fetched over HTTPS.
const pemCertMarker = "-----BEGIN CERTIFICATE-----"

// Client retrieves certificates from remote endpoints.
type Client struct {
	Timeout   time.Duration // Request and handshake timeout
	Version   string        // Application version for User-Agent
	UserAgent string        // Custom User-Agent string, if empty will be constructed from Version

	mu      sync.Mutex
	client  *http.Client
	decoder *x509certs.Certificate
}

// New creates a new Client with default values.
//
// It initializes the client with a default timeout of 10 seconds
// and the provided application version.
//
// Parameters:
//   - version: Application version string
//
// Returns:
//   - *Client: New retrieval client
func New(version string) *Client {
	return &Client{
		Timeout: 10 * time.Second,
		Version: version,
		decoder: x509certs.New(),
	}
}

// GetUserAgent returns the User-Agent string, constructing it if not set.
//
// If a custom User-Agent is configured, it returns that. Otherwise, it
// constructs a default one including the application version and GitHub URL.
//
// Returns:
//   - string: User-Agent string
func (c *Client) GetUserAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return fmt.Sprintf("X.509-Certificate-Chain-Inspector/%s (+https://github.com/tdslot/cert-tree)", c.Version)
}

// httpClient returns an HTTP client configured with the current timeout.
//
// Thread Safety: Safe for concurrent use.
func (c *Client) httpClient() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		c.client = &http.Client{Timeout: c.Timeout}
		return c.client
	}

	if c.client.Timeout != c.Timeout {
		c.client.Timeout = c.Timeout
	}

	return c.client
}

// Fetch retrieves the certificates served at target.
//
// Retrieval is two-stage. The target is first fetched over HTTPS and parsed
// as a PEM bundle when the body contains certificate blocks, which covers
// bundle URLs such as cacert.pem. Otherwise a TLS handshake to the target
// host captures the chain the server presents during connection setup. The
// handshake skips verification since the goal is inspecting whatever the
// server offers, valid or not.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - target: URL or bare host; a missing scheme defaults to https, a
//     missing port to 443
//
// Returns:
//   - []*x509.Certificate: Certificates in the order the endpoint provided them
//   - error: Error if no certificates could be retrieved
//
// Thread Safety: Safe for concurrent use.
func (c *Client) Fetch(ctx context.Context, target string) ([]*x509.Certificate, error) {
	u, err := parseTarget(target)
	if err != nil {
		return nil, err
	}

	if data, err := c.download(ctx, u.String()); err == nil {
		if bytes.Contains(data, []byte(pemCertMarker)) {
			return c.decoder.DecodeMultiple(data)
		}
	}

	return c.handshake(ctx, u)
}

// parseTarget normalizes a user-supplied URL or bare hostname.
func parseTarget(target string) (*url.URL, error) {
	if !strings.Contains(target, "://") {
		target = "https://" + target
	}

	u, err := url.Parse(target)
	if err != nil || u.Hostname() == "" {
		return nil, ErrInvalidURL
	}

	return u, nil
}

// download performs an HTTPS GET of rawURL and returns the response body.
func (c *Client) download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	// Set the User-Agent header with version information and GitHub link
	req.Header.Set("User-Agent", c.GetUserAgent())

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}

	// Get a buffer from the pool
	buf := gc.Default.Get()
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		resp.Body.Close()
		buf.Reset()
		gc.Default.Put(buf)
		return nil, err
	}
	resp.Body.Close()

	data := append([]byte(nil), buf.Bytes()...)
	buf.Reset()
	gc.Default.Put(buf)

	return data, nil
}

// handshake dials the target and returns the peer certificates presented
// during TLS connection setup.
func (c *Client) handshake(ctx context.Context, u *url.URL) ([]*x509.Certificate, error) {
	port := u.Port()
	if port == "" {
		port = "443"
	}
	addr := net.JoinHostPort(u.Hostname(), port)

	dialer := &net.Dialer{Timeout: c.Timeout}

	if deadline, ok := ctx.Deadline(); ok {
		dialer.Deadline = deadline
	}

	conn, err := tls.DialWithDialer(dialer, "tcp", addr,
		// We just want the cert chain, not to verify
		&tls.Config{InsecureSkipVerify: true})
	if err != nil {
		return nil, fmt.Errorf("x509fetch: failed to connect to %s: %w", addr, err)
	}
	defer conn.Close()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	// Get the certificate chain from the connection
	peerCerts := conn.ConnectionState().PeerCertificates
	if len(peerCerts) == 0 {
		return nil, ErrNoCertificates
	}

	return peerCerts, nil
}
