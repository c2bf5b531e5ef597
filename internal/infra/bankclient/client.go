package bankclient

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/meterpay/ai-payroll/internal/app/payroll"
)

// Client talks the bank API line protocol over TCP. One connection per credit;
// the whole exchange runs under a single deadline.
type Client struct {
	addr           string
	dialTimeout    time.Duration
	requestTimeout time.Duration
	clock          clock.Clock
}

// New creates a Client for the bank endpoint named in cfg.
func New(cfg payroll.Config, clock clock.Clock) *Client {
	return &Client{
		addr:           cfg.BankAddr,
		dialTimeout:    cfg.BankDialTimeout,
		requestTimeout: cfg.BankRequestTimeout,
		clock:          clock,
	}
}

// Credit sends a credit instruction and waits for the bank's verdict.
func (c *Client) Credit(ctx context.Context, req payroll.CreditRequest) error {
	dialer := net.Dialer{Timeout: c.dialTimeout}

	conn, err := dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return fmt.Errorf("dial bank api: %w", err)
	}
	defer conn.Close() //nolint:errcheck

	err = conn.SetDeadline(c.clock.Now().Add(c.requestTimeout))
	if err != nil {
		return fmt.Errorf("set bank api deadline: %w", err)
	}

	_, err = fmt.Fprintf(conn, "CREDIT|%s|%s|%s\n", req.UniqueID, formatAmount(req.Amount), req.IdempotencyKey)
	if err != nil {
		return fmt.Errorf("write credit request: %w", err)
	}

	scanner := bufio.NewScanner(conn)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read bank response: %w", err)
		}

		return errors.New("bank api closed connection without response")
	}

	return parseResponse(scanner.Text())
}

// formatAmount renders an amount with currency precision for the wire.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// parseResponse turns a RESPONSE|<STATUS>|<reason> line into the call outcome.
func parseResponse(s string) error {
	parts := strings.SplitN(s, "|", 3)
	if len(parts) != 3 || parts[0] != "RESPONSE" {
		return fmt.Errorf("malformed bank response: %q", s)
	}

	if parts[1] != "ACCEPTED" {
		return fmt.Errorf("bank rejected credit: %s", parts[2])
	}

	return nil
}
