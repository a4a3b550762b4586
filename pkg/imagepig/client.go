package imagepig

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	defaultAPIURL  = "https://api.imagepig.com"
	defaultTimeout = 30 * time.Second
)

// Client は ImagePig API への認証付きクライアントです。
// 構築後は読み取り専用であり、複数の goroutine から同時に利用できます。
// API キーはログにもエラーメッセージにも出力されません。
type Client struct {
	apiKey     string
	apiURL     string
	httpClient Doer
	cache      ImageCacher
	cacheTTL   time.Duration
	logger     *slog.Logger
}

// Option は Client の構築オプションです。
type Option func(*Client)

// WithAPIURL は既定のエンドポイント URL を差し替えます。末尾のスラッシュは除去されます。
func WithAPIURL(rawURL string) Option {
	return func(c *Client) {
		c.apiURL = strings.TrimSuffix(rawURL, "/")
	}
}

// WithHTTPClient は HTTP トランスポートを差し替えます。
func WithHTTPClient(doer Doer) Option {
	return func(c *Client) {
		c.httpClient = doer
	}
}

// WithImageCache はダウンロード済み画像バイト列のキャッシュを設定します。
// 未設定の場合、キャッシュは行われません。
func WithImageCache(cache ImageCacher, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// WithLogger はロガーを差し替えます。既定は slog.Default() です。
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New は API キーを受け取って Client を初期化します。
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	c := &Client{
		apiKey:     apiKey,
		apiURL:     defaultAPIURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// call は params を JSON ボディとして 1 回の POST を発行し、
// レスポンスボディを APIResponse に包んで返します。
// HTTP ステータスコードは検証せず、エラーボディもそのまま解析して返します。
func (c *Client) call(ctx context.Context, endpoint string, params map[string]any) (*APIResponse, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("imagepig: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/"+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &HTTPError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// キャンセルは一般的なトランスポート障害として潰さず、そのまま返します。
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &HTTPError{Err: err}
	}
	defer resp.Body.Close()

	var content map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&content); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedResponse, err)
	}

	return newAPIResponse(content, c), nil
}
