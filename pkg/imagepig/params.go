package imagepig

// newParams は追加パラメータを先にコピーしたリクエストパラメータマップを返します。
// ビルダー管理のキーは呼び出し側で後から代入されるため、キーが衝突した場合は
// 常にビルダー側が勝ちます。キーが黙って失われることはありません。
func newParams(extra map[string]any) map[string]any {
	params := make(map[string]any, len(extra)+6)
	for key, value := range extra {
		params[key] = value
	}
	return params
}
