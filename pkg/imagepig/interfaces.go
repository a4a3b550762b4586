package imagepig

import (
	"net/http"
	"time"
)

// Doer は HTTP リクエストを 1 回実行する最小限のインターフェースです。
// *http.Client がそのまま実装します。テストでは台本ベースのモックを注入します。
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ImageCacher は、ダウンロード済み画像バイト列をキャッシュするためのインターフェースです。
// nil を許容します（キャッシュなし動作）。
type ImageCacher interface {
	// Get は、指定されたキーに紐づくアイテムを取得します。
	Get(key string) (any, bool)
	// Set は、指定されたキーと値、有効期限でアイテムを保存します。
	Set(key string, value any, d time.Duration)
}
