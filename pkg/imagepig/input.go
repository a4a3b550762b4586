package imagepig

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
)

// ImageInput は画像入力を表す閉じたバリアント集合です。
// リモート URL 参照 (URLInput) とインラインの base64 バイト列 (BytesInput) の
// 2 種類があり、バリアントごとに正規化関数を 1 つずつ持ちます。
type ImageInput interface {
	// prepare は入力を検証し、param を接頭辞とするワイヤキーを params に書き込みます。
	// 検証はネットワーク I/O より前に必ず完了します。
	prepare(param string, params map[string]any) error
}

// URLInput はリモート画像への絶対 URL 参照です。
type URLInput string

func (u URLInput) prepare(param string, params map[string]any) error {
	parsed, err := url.ParseRequestURI(string(u))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return &InvalidURLError{URL: string(u)}
	}
	params[param+"_url"] = string(u)
	return nil
}

// BytesInput は base64 テキストとして解釈されるインライン画像バイト列です。
// デコード後の生バイト列がパラメータに設定され、JSON 変換時に再び base64 文字列として
// ワイヤに載ります。
type BytesInput []byte

func (b BytesInput) prepare(param string, params map[string]any) error {
	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(b)))
	n, err := base64.StdEncoding.Decode(decoded, b)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	params[param+"_data"] = decoded[:n]
	return nil
}

// prepareImage は入力の nil チェックを含む正規化の入り口です。
func prepareImage(input ImageInput, param string, params map[string]any) error {
	if input == nil {
		return errors.New("imagepig: image input is required")
	}
	return input.prepare(param, params)
}
