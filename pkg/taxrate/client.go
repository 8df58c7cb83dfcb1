// Package taxrate talks to the external sales-tax rate lookup service.
package taxrate

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ordertotal/order-total-service/pkg/logger"
)

// ErrNotAvailable covers every way a rate lookup can fail: the service is
// down, the request times out, or the body is not a number. Callers only
// ever learn that no rate could be obtained.
var ErrNotAvailable = errors.New("sales tax rate not available")

type Client struct {
	client *resty.Client
	url    string
}

// New builds a rate client for the given lookup URL. The timeout bounds
// each lookup; there are no retries.
func New(url string, timeout time.Duration) *Client {
	c := resty.New().SetTimeout(timeout)

	return &Client{
		client: c,
		url:    url,
	}
}

// GetRate asks the lookup service for the sales tax rate of a zip code.
// The request body is the zip code as raw text, and the response body is
// expected to be a bare decimal rate like `0.07`.
//
// The response status code is intentionally not inspected: a non-2xx reply
// whose body parses as a float is treated as a valid rate.
func (c *Client) GetRate(ctx context.Context, zip string) (float32, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain").
		SetBody(zip).
		Post(c.url)
	if err != nil {
		logger.Log(ctx).Errorf("taxrate: failed sending request to rate service, %v", err)
		return 0, ErrNotAvailable
	}

	rate, err := strconv.ParseFloat(resp.String(), 32)
	if err != nil {
		logger.Log(ctx).Errorf("taxrate: failed parsing rate %q, %v", resp.String(), err)
		return 0, ErrNotAvailable
	}

	return float32(rate), nil
}
