package ojmicroline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/evcc-io/evcc/util"
	"github.com/evcc-io/evcc/util/request"
)

const JSON_CONTENT = "application/json"

var headers = map[string]string{
	"Content-Type": JSON_CONTENT + "; charset=utf-8",
	"Accept":       JSON_CONTENT,
}

// Connection is the OJ Microline connection.
// It keeps a single session and must not be used concurrently.
type Connection struct {
	*request.Helper
	log        *util.Logger
	api        API
	baseURL    string
	timeout    time.Duration
	session    session
	ownsClient bool
}

type Option func(*Connection)

// WithHTTPClient uses an external http client. It is never closed by the connection.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Connection) {
		c.Helper = &request.Helper{Client: client}
		c.ownsClient = false
	}
}

// WithTimeout sets the timeout for each request
func WithTimeout(timeout time.Duration) Option {
	return func(c *Connection) {
		c.timeout = timeout
	}
}

// WithBaseURL replaces https://<host> as api root
func WithBaseURL(uri string) Option {
	return func(c *Connection) {
		c.baseURL = strings.TrimSuffix(uri, "/")
	}
}

// NewConnection creates a new OJ Microline connection for the given api family
func NewConnection(log *util.Logger, api API, opts ...Option) *Connection {
	// request timeout is applied per call
	client := request.NewHelper(log)
	client.Timeout = 0

	c := &Connection{
		Helper:     client,
		log:        log,
		api:        api,
		baseURL:    "https://" + api.Host(),
		timeout:    REQUEST_TIMEOUT,
		ownsClient: true,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// request sends a json request and returns the json response body.
// Every request uses up one call of the session budget, including failed ones.
func (c *Connection) request(ctx context.Context, method, path string, params url.Values, body any) ([]byte, error) {
	c.session.callsLeft--

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	uri := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(params) > 0 {
		uri += "?" + params.Encode()
	}

	var data io.Reader
	if body != nil {
		data = request.MarshalJSON(body)
	}

	req, err := request.New(method, uri, data, headers)
	if err != nil {
		return nil, newError(ErrRequest, "could not create request", err)
	}

	resp, err := c.Do(req.WithContext(ctx))
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	b, err := request.ReadBody(resp)

	var se request.StatusError
	if errors.As(err, &se) {
		e := newError(ErrConnection, "unexpected status response from the api", err)
		e.Details = map[string]string{"status": strconv.Itoa(se.StatusCode()), "response": string(b)}
		return nil, e
	}
	if err != nil {
		return nil, transportError(err)
	}

	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, JSON_CONTENT) {
		e := newError(ErrRequest, "unexpected content type response from the api", nil)
		e.Details = map[string]string{"Content-Type": ct, "response": string(b)}
		return nil, e
	}

	return b, nil
}

// sessionParams returns the query parameters for an authenticated request
func (c *Connection) sessionParams(extra url.Values) url.Values {
	params := url.Values{"sessionid": {c.session.id}}
	for k, v := range extra {
		params[k] = v
	}
	return params
}

// GetThermostats returns all thermostats of the account
func (c *Connection) GetThermostats(ctx context.Context) ([]Thermostat, error) {
	if err := c.Login(ctx); err != nil {
		return nil, err
	}

	data, err := c.request(ctx, http.MethodGet, c.api.ThermostatsPath(), c.sessionParams(c.api.ThermostatsParams()), nil)
	if err != nil {
		return nil, err
	}

	res, err := c.api.ParseThermostats(data)
	if err == nil {
		c.log.DEBUG.Printf("got %d thermostats", len(res))
	}

	return res, err
}

// GetThermostat returns the thermostat with the given serial number
func (c *Connection) GetThermostat(ctx context.Context, serialNumber string) (*Thermostat, error) {
	res, err := c.GetThermostats(ctx)
	if err != nil {
		return nil, err
	}

	for i := range res {
		if res[i].SerialNumber == serialNumber {
			return &res[i], nil
		}
	}

	return nil, newError(ErrResults, fmt.Sprintf("thermostat %s not found", serialNumber), nil)
}

// SetRegulationMode changes the regulation mode of the thermostat. A temperature of 0
// keeps the thermostat's current setpoint, a duration of 0 uses COMFORT_DURATION.
// WG4 thermostats are sent the stored manual or comfort setpoint in that case.
func (c *Connection) SetRegulationMode(ctx context.Context, t *Thermostat, mode RegulationMode, temperature int, duration time.Duration) error {
	if duration == 0 {
		duration = COMFORT_DURATION
	}

	if err := c.Login(ctx); err != nil {
		return err
	}

	body := c.api.UpdateBody(t, mode, temperature, duration)

	data, err := c.request(ctx, http.MethodPost, c.api.UpdatePath(), c.sessionParams(c.api.UpdateParams(t)), body)
	if err != nil {
		return err
	}

	ok, err := c.api.ParseUpdate(data)
	if err != nil {
		return err
	}

	if !ok {
		return newError(ErrRequest, fmt.Sprintf("unable to set regulation mode %s", mode), nil)
	}

	c.log.DEBUG.Printf("thermostat %s: regulation mode set to %s", t.SerialNumber, mode)

	return nil
}

// Close releases the http client if it was created by the connection and forgets the session
func (c *Connection) Close() error {
	if c.ownsClient {
		c.CloseIdleConnections()
		c.ownsClient = false
	}

	c.session.reset()

	return nil
}
