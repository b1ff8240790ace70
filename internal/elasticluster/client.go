// Package elasticluster queries the elasticluster tool and its on-disk
// state for completion candidates.
//
// Both queries degrade silently: a missing binary, a missing storage
// directory, or malformed output yield empty lists, never errors. The
// worst observable symptom is an absence of suggestions.
package elasticluster

import (
	"time"

	"github.com/elasticomp/elasticomp/internal/logger"
)

const (
	// DefaultBinary is the elasticluster executable looked up on PATH.
	DefaultBinary = "elasticluster"
	// DefaultStorageSuffix is the extension of saved cluster state files.
	DefaultStorageSuffix = ".pickle"
	// DefaultTimeout bounds a list-templates invocation.
	DefaultTimeout = 3 * time.Second
)

// Client resolves cluster and template names.
type Client struct {
	binary        string
	storageDir    string
	storageSuffix string
	timeout       time.Duration
	cache         *TemplateCache
	log           *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBinary overrides the elasticluster executable path.
func WithBinary(binary string) Option {
	return func(c *Client) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithStorageSuffix overrides the cluster state file extension.
func WithStorageSuffix(suffix string) Option {
	return func(c *Client) {
		if suffix != "" {
			c.storageSuffix = suffix
		}
	}
}

// WithTimeout overrides the subprocess timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithTemplateCache attaches a cache for list-templates results.
func WithTemplateCache(cache *TemplateCache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithLogger attaches a logger for debug diagnostics.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a client reading cluster state from storageDir.
func NewClient(storageDir string, opts ...Option) *Client {
	c := &Client{
		binary:        DefaultBinary,
		storageDir:    storageDir,
		storageSuffix: DefaultStorageSuffix,
		timeout:       DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.New("error", nil)
	}
	return c
}
