package steam

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

const (
	storeUrl         = "https://store.steampowered.com"
	defaultUseragent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/51.0.2704.103 Safari/537.36"

	DefaultPollInterval = 100 * time.Millisecond

	LanguageEng = "english"
	LanguageRus = "russian"
)

// sessionActive guards the Steamworks session, which the SDK allows once per process.
var sessionActive atomic.Bool

type Client struct {
	sdk          SDK
	client       *http.Client
	logger       *slog.Logger
	useragent    string
	language     string
	storeUrl     string
	pollInterval time.Duration
	lenientInit  bool
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithUseragent(useragent string) Option {
	return func(c *Client) {
		c.useragent = useragent
	}
}

func WithLanguage(language string) Option {
	return func(c *Client) {
		c.language = language
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(c *Client) {
		c.pollInterval = d
	}
}

// WithLenientInit treats init results other than generic failure and missing
// client as success.
func WithLenientInit() Option {
	return func(c *Client) {
		c.lenientInit = true
	}
}

func withStoreUrl(u string) Option {
	return func(c *Client) {
		c.storeUrl = u
	}
}

func NewClient(sdk SDK, opts ...Option) (*Client, error) {
	if sdk == nil {
		return nil, errors.New("steam sdk is nil")
	}

	c := &Client{
		sdk:          sdk,
		client:       http.DefaultClient,
		useragent:    defaultUseragent,
		language:     LanguageEng,
		storeUrl:     storeUrl,
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.pollInterval <= 0 {
		c.pollInterval = DefaultPollInterval
	}

	return c, nil
}
