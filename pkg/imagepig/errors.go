package imagepig

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput はインライン画像入力が base64 としてデコードできないことを示します。
	ErrInvalidInput = errors.New("imagepig: cannot decode base64 input")

	// ErrUnexpectedResponse は、レスポンスボディが期待した JSON として解析できない、
	// image_data が base64 として不正、またはファイル書き込みに失敗したことを示します。
	ErrUnexpectedResponse = errors.New("imagepig: unexpected response")

	// ErrMissingData は画像バイト列の実体化に失敗したことを示します。
	// 利用可能なフィールドがない、リトライを使い切った、404 以外の失敗ステータスを受けた、
	// ダウンロード中にトランスポート障害が発生した、のいずれかです。
	ErrMissingData = errors.New("imagepig: unable to fetch image")
)

// HTTPError はトランスポート層の失敗を表します。元のエラーを保持し、Unwrap で取り出せます。
type HTTPError struct {
	Err error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("imagepig: http request failed: %v", e.Err)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// InvalidURLError は、リモート画像参照が絶対 URL として解釈できないことを表します。
// 問題の文字列をそのまま保持します。
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return "imagepig: invalid url: " + e.URL
}
