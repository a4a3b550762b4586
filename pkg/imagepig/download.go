package imagepig

import (
	"context"
	"io"
	"net/http"
	"time"
)

const (
	downloadAttempts = 10
	downloadInterval = time.Second

	// ホストによっては無名クライアントを拒否するため、汎用ブラウザとして名乗ります。
	downloadUserAgent = "Mozilla/5.0"
)

// fetchOutcome はダウンロード 1 回分の試行を 3 値に分類した結果です。
type fetchOutcome int

const (
	// fetchSuccess は 2xx 応答でボディの取得に成功したことを示します。
	fetchSuccess fetchOutcome = iota
	// fetchRetry は 404 応答です。結果整合性ラグとみなし、待機して再試行します。
	fetchRetry
	// fetchFatal はその他のステータスまたはトランスポート障害です。即時中断します。
	fetchFatal
)

// classifyStatus は HTTP ステータスコードを試行結果に分類します。
func classifyStatus(code int) fetchOutcome {
	switch {
	case code >= 200 && code < 300:
		return fetchSuccess
	case code == http.StatusNotFound:
		return fetchRetry
	default:
		return fetchFatal
	}
}

// fetchOnce は 1 回の GET を発行し、結果を分類して返します。
// 返り値の err が非 nil の場合は分類によらず呼び出し元へそのまま返すべきエラーです
// （キャンセル、またはボディ読み取り失敗の HTTPError）。
func (r *APIResponse) fetchOnce(ctx context.Context, rawURL string) (fetchOutcome, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fetchFatal, nil, &HTTPError{Err: err}
	}
	req.Header.Set("User-Agent", downloadUserAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		// キャンセルはトランスポート障害として潰しません。
		if ctx.Err() != nil {
			return fetchFatal, nil, ctx.Err()
		}
		r.log().WarnContext(ctx, "画像のダウンロードに失敗しました", "url", rawURL, "error", err)
		return fetchFatal, nil, nil
	}
	defer resp.Body.Close()

	outcome := classifyStatus(resp.StatusCode)
	if outcome != fetchSuccess {
		return outcome, nil, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fetchFatal, nil, &HTTPError{Err: err}
	}
	return fetchSuccess, data, nil
}

// download は image_url から画像バイト列を取得します。
// 404 の間は retryInterval を挟んで最大 downloadAttempts 回まで再試行し、
// それ以外の失敗は即座に打ち切って ErrMissingData を返します。
func (r *APIResponse) download(ctx context.Context, rawURL string) ([]byte, error) {
	if r.cache != nil {
		if cached, ok := r.cache.Get(rawURL); ok {
			if data, ok := cached.([]byte); ok {
				return data, nil
			}
		}
	}

	for attempt := 1; attempt <= downloadAttempts; attempt++ {
		outcome, data, err := r.fetchOnce(ctx, rawURL)
		if err != nil {
			return nil, err
		}

		switch outcome {
		case fetchSuccess:
			if r.cache != nil {
				r.cache.Set(rawURL, data, r.cacheTTL)
			}
			return data, nil
		case fetchRetry:
			r.log().DebugContext(ctx, "画像URLがまだ利用できません。待機して再試行します",
				"url", rawURL, "attempt", attempt)
			if err := sleepContext(ctx, r.retryInterval); err != nil {
				return nil, err
			}
		case fetchFatal:
			return nil, ErrMissingData
		}
	}

	return nil, ErrMissingData
}

// sleepContext は d だけ待機します。ctx のキャンセルは ctx.Err() として返します。
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
