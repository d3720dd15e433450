// Package healthcheck probes a running greeter service.
package healthcheck

import (
	"context"
	"fmt"
	"io/ioutil"
	"net"
	"net/http"
	"time"

	"github.com/hellodexcom/greeter/server"
)

const dialRetryInterval = 100 * time.Millisecond

// Check verifies that a greeter service at Address accepts TCP connections and answers GET / with the greeting.
type Check struct {
	Address string

	// Client is used for the GET request. http.DefaultClient is used when nil.
	Client *http.Client
}

// Run waits until Address accepts a TCP connection and then requests /. It returns the response body. ctx bounds the
// entire check.
func (c *Check) Run(ctx context.Context) (string, error) {
	err := c.waitForTCPConnect(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to connect to %s: %w", c.Address, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://%s/", c.Address), nil)
	if err != nil {
		return "", err
	}

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	response, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", response.StatusCode)
	}

	if string(body) != server.Greeting {
		return "", fmt.Errorf("unexpected body: %s", body)
	}

	return string(body), nil
}

func (c *Check) waitForTCPConnect(ctx context.Context) error {
	dialer := &net.Dialer{}
	for {
		conn, err := dialer.DialContext(ctx, "tcp", c.Address)
		if err == nil {
			_ = conn.Close()
			return nil
		}

		select {
		case <-ctx.Done():
			return err
		case <-time.After(dialRetryInterval):
		}
	}
}
