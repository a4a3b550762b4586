package imagepig

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"
)

// APIResponse は API 呼び出しのデコード済みレスポンスボディを包み、
// メタデータへのアクセサと画像バイト列の実体化を提供します。
// アクセサは失敗せず、キーの欠落や型不一致は「値なし」(false) として返します。
type APIResponse struct {
	content       map[string]any
	httpClient    Doer
	cache         ImageCacher
	cacheTTL      time.Duration
	retryInterval time.Duration
	logger        *slog.Logger
}

func newAPIResponse(content map[string]any, c *Client) *APIResponse {
	return &APIResponse{
		content:       content,
		httpClient:    c.httpClient,
		cache:         c.cache,
		cacheTTL:      c.cacheTTL,
		retryInterval: downloadInterval,
		logger:        c.logger,
	}
}

// URL は image_url フィールドの値を返します。
func (r *APIResponse) URL() (string, bool) {
	return r.stringField("image_url")
}

// MimeType は mime_type フィールドの値を返します。
func (r *APIResponse) MimeType() (string, bool) {
	return r.stringField("mime_type")
}

// Seed は seed フィールドを非負整数として返します。
// 負数や整数でない値は「値なし」として扱います。
func (r *APIResponse) Seed() (uint64, bool) {
	value, ok := r.content["seed"].(float64)
	if !ok || value < 0 || value != math.Trunc(value) {
		return 0, false
	}
	return uint64(value), true
}

// Duration は completed_at - started_at の経過時間を返します。
// どちらかが欠落しているか RFC3339 として解釈できない場合は「値なし」です。
func (r *APIResponse) Duration() (time.Duration, bool) {
	started, ok := r.timeField("started_at")
	if !ok {
		return 0, false
	}
	completed, ok := r.timeField("completed_at")
	if !ok {
		return 0, false
	}
	return completed.Sub(started), true
}

func (r *APIResponse) stringField(key string) (string, bool) {
	value, ok := r.content[key].(string)
	if !ok {
		return "", false
	}
	return value, true
}

func (r *APIResponse) timeField(key string) (time.Time, bool) {
	value, ok := r.stringField(key)
	if !ok {
		return time.Time{}, false
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// Data は画像バイト列を実体化します。
//
// インラインの image_data 文字列があれば base64 デコードのみで返します
// （ネットワーク I/O なし）。なければ image_url からのダウンロードを試みます。
// ストレージ層の結果整合性ラグを考慮して 404 の間は待機しながら再試行します。
// どちらのフィールドも使えない場合は ErrMissingData を返します。
func (r *APIResponse) Data(ctx context.Context) ([]byte, error) {
	if encoded, ok := r.stringField("image_data"); ok {
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnexpectedResponse, err)
		}
		return data, nil
	}

	if rawURL, ok := r.URL(); ok {
		return r.download(ctx, rawURL)
	}

	return nil, ErrMissingData
}

// Save は Data の結果を path に書き出します。ファイルは作成または切り詰められます。
// ファイルシステムの失敗は種類を問わず ErrUnexpectedResponse に集約されます。
func (r *APIResponse) Save(ctx context.Context, path string) error {
	data, err := r.Data(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s", ErrUnexpectedResponse, err)
	}
	return nil
}

func (r *APIResponse) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}
