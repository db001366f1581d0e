package ojmicroline

import (
	"context"
	"encoding/json"
	"net/http"
)

// session is the vendor session id with its remaining request budget
type session struct {
	id        string
	callsLeft int
}

func (s *session) valid() bool {
	return s.id != "" && s.callsLeft > 0
}

func (s *session) reset() {
	s.id = ""
}

// SessionID returns the current session id, empty without session
func (c *Connection) SessionID() string {
	return c.session.id
}

// CallsLeft returns the number of requests left before a new login is required
func (c *Connection) CallsLeft() int {
	return c.session.callsLeft
}

// Login creates a new session unless the current one is still usable
func (c *Connection) Login(ctx context.Context) error {
	if c.session.valid() {
		return nil
	}

	c.session.reset()

	data, err := c.request(ctx, http.MethodPost, c.api.LoginPath(), nil, c.api.LoginBody())
	if err != nil {
		return err
	}

	var res SessionResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return newError(ErrRequest, "could not decode login response", err)
	}

	if res.ErrorCode == errorCodeFailure || res.SessionId == "" {
		return newError(ErrAuth, "unable to create session, wrong username, password, api key or customer id provided", nil)
	}

	c.session.id = res.SessionId
	c.session.callsLeft = SESSION_CALLS

	c.log.DEBUG.Printf("%s: new session, valid for %d calls", c.api.family(), SESSION_CALLS)

	return nil
}
