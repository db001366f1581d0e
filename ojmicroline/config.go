package ojmicroline

import (
	"fmt"
	"strings"
	"time"

	"github.com/evcc-io/evcc/api"
	"github.com/evcc-io/evcc/util"
)

// Config is the generic connection configuration
type Config struct {
	Family          string
	Host            string
	APIKey          string
	CustomerID      int
	User            string
	Password        string
	ClientSWVersion int
	Timeout         time.Duration
}

// NewAPI creates the api family selected by the config
func (cc Config) NewAPI() (API, error) {
	switch strings.ToLower(cc.Family) {
	case "", "wd5":
		if cc.APIKey == "" {
			return nil, fmt.Errorf("wd5: %w", api.ErrMissingCredentials)
		}

		var opts []WD5Option
		if cc.Host != "" {
			opts = append(opts, WithWD5Host(cc.Host))
		}
		if cc.ClientSWVersion != 0 {
			opts = append(opts, WithClientSWVersion(cc.ClientSWVersion))
		}

		return NewWD5API(cc.APIKey, cc.CustomerID, cc.User, cc.Password, opts...), nil

	case "wg4":
		var opts []WG4Option
		if cc.Host != "" {
			opts = append(opts, WithWG4Host(cc.Host))
		}

		return NewWG4API(cc.User, cc.Password, opts...), nil
	}

	return nil, fmt.Errorf("invalid api family: %s", cc.Family)
}

// NewConnectionFromConfig creates a connection from generic config
func NewConnectionFromConfig(log *util.Logger, other map[string]interface{}, opts ...Option) (*Connection, error) {
	var cc Config

	if err := util.DecodeOther(other, &cc); err != nil {
		return nil, err
	}

	if cc.User == "" || cc.Password == "" {
		return nil, api.ErrMissingCredentials
	}

	family, err := cc.NewAPI()
	if err != nil {
		return nil, err
	}

	log.Redact(cc.User, cc.Password, cc.APIKey)

	if cc.Timeout > 0 {
		opts = append([]Option{WithTimeout(cc.Timeout)}, opts...)
	}

	return NewConnection(log, family, opts...), nil
}
