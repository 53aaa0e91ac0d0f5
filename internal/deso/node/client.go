// Package node talks to the public API of a DeSo node.
package node

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/chain"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	DefaultURL = "https://bitclout.com/api/v1"

	blockPath = "/block"

	opFetchTip       = "fetch_tip"
	opFetchHeader    = "fetch_header"
	opFetchFullBlock = "fetch_full_block"
)

var (
	// ErrUnexpectedStatus is returned without retrying when the node answers with a client error.
	ErrUnexpectedStatus = errors.New("unexpected status code")
	// ErrInvalidHash is returned for block hashes that are not 32 bytes of hex.
	ErrInvalidHash = errors.New("invalid block hash")

	errUndecodable = errors.New("undecodable response body")
)

// Config holds the client options.
type Config struct {
	URL               string
	Timeout           time.Duration
	RequestsPerSecond int
	HeaderCacheSize   int
	Policy            Policy
}

// Client fetches headers and blocks, retrying connection failures and
// undecodable bodies according to its Policy.
type Client struct {
	url     string
	http    *resty.Client
	limiter ratelimit.Limiter
	policy  Policy
	headers *lru.Cache[string, chain.Header]
	metrics Metrics
	logger  *zap.Logger
}

// NewClient builds a Client for the node at cfg.URL.
func NewClient(cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if metrics == nil {
		return nil, errors.New("node client metrics is required")
	}
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}

	httpClient := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RequestsPerSecond > 0 {
		limiter = ratelimit.New(cfg.RequestsPerSecond)
	}

	var headers *lru.Cache[string, chain.Header]
	if cfg.HeaderCacheSize > 0 {
		cache, err := lru.New[string, chain.Header](cfg.HeaderCacheSize)
		if err != nil {
			return nil, fmt.Errorf("init header cache: %w", err)
		}
		headers = cache
	}

	return &Client{
		url:     strings.TrimRight(cfg.URL, "/"),
		http:    httpClient,
		limiter: limiter,
		policy:  cfg.Policy,
		headers: headers,
		metrics: metrics,
		logger:  logger.Named("node").With(zap.String("url", cfg.URL)),
	}, nil
}

// FetchTip returns the header of the highest block known to the node.
func (c *Client) FetchTip(ctx context.Context) (header chain.Header, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(opFetchTip, err, started)
	}()

	var resp chain.TipResponse
	err = c.retry(ctx, opFetchTip, func() error {
		resp = chain.TipResponse{}
		if err := c.do(ctx, http.MethodGet, "", nil, &resp); err != nil {
			return err
		}
		if resp.Header == nil {
			return fmt.Errorf("tip response without header: %w", errUndecodable)
		}
		return validateHash(resp.Header.BlockHashHex, errUndecodable)
	})
	if err != nil {
		return chain.Header{}, fmt.Errorf("fetch tip: %w", err)
	}

	return *resp.Header, nil
}

// FetchHeader returns the header of the block identified by hash.
func (c *Client) FetchHeader(ctx context.Context, hash string) (header chain.Header, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(opFetchHeader, err, started)
	}()

	if err = validateHash(hash, ErrInvalidHash); err != nil {
		return chain.Header{}, err
	}
	if c.headers != nil {
		if cached, ok := c.headers.Get(hash); ok {
			return cached, nil
		}
	}

	var resp chain.FullBlock
	err = c.retry(ctx, opFetchHeader, func() error {
		resp = chain.FullBlock{}
		if err := c.do(ctx, http.MethodPost, blockPath, chain.BlockRequest{HashHex: hash}, &resp); err != nil {
			return err
		}
		return checkBlockHeader(resp.Header, hash)
	})
	if err != nil {
		return chain.Header{}, fmt.Errorf("fetch header %s: %w", hash, err)
	}

	if c.headers != nil {
		c.headers.Add(hash, *resp.Header)
	}
	return *resp.Header, nil
}

// FetchFullBlock returns the block identified by hash with all its transactions.
func (c *Client) FetchFullBlock(ctx context.Context, hash string) (block chain.FullBlock, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(opFetchFullBlock, err, started)
	}()

	if err = validateHash(hash, ErrInvalidHash); err != nil {
		return chain.FullBlock{}, err
	}

	err = c.retry(ctx, opFetchFullBlock, func() error {
		block = chain.FullBlock{}
		if err := c.do(ctx, http.MethodPost, blockPath, chain.BlockRequest{HashHex: hash, FullBlock: true}, &block); err != nil {
			return err
		}
		return checkBlockHeader(block.Header, hash)
	})
	if err != nil {
		return chain.FullBlock{}, fmt.Errorf("fetch block %s: %w", hash, err)
	}

	if c.headers != nil {
		c.headers.Add(hash, *block.Header)
	}
	return block, nil
}

func (c *Client) retry(ctx context.Context, operation string, fn func() error) error {
	notify := func(err error, wait time.Duration) {
		c.metrics.ObserveRetry(operation)
		c.logger.Warn("remote call failed, retrying",
			zap.String("operation", operation),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	}
	return backoff.RetryNotify(fn, backoff.WithContext(c.policy.NewBackOff(), ctx), notify)
}

// do issues one request. Transport failures and undecodable bodies are returned
// as retryable errors; client errors are permanent.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	c.limiter.Take()

	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, c.url+path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return backoff.Permanent(ctxErr)
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	status := resp.StatusCode()
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError && status != http.StatusTooManyRequests {
		return backoff.Permanent(fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, status, http.StatusText(status)))
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("status %d: %w: %v", status, errUndecodable, err)
	}
	return nil
}

func checkBlockHeader(header *chain.Header, hash string) error {
	if header == nil {
		return fmt.Errorf("block response without header: %w", errUndecodable)
	}
	if header.BlockHashHex != hash {
		return backoff.Permanent(fmt.Errorf("node returned block %s for %s", header.BlockHashHex, hash))
	}
	return nil
}

func validateHash(hash string, kind error) error {
	if len(hash) != chainhash.MaxHashStringSize {
		return fmt.Errorf("%w: %q has length %d", kind, hash, len(hash))
	}
	if _, err := chainhash.NewHashFromStr(hash); err != nil {
		return fmt.Errorf("%w: %q: %v", kind, hash, err)
	}
	return nil
}
