package imagepig

// Proportion は flux エンドポイントで生成する画像の縦横比です。
// ゼロ値は ProportionLandscape として扱われます。
type Proportion int

const (
	ProportionLandscape Proportion = iota
	ProportionPortrait
	ProportionSquare
	ProportionWide
)

// proportionTokens はワイヤ上の文字列トークンへの明示的な対応表です。
// 内部の定数名から派生させず、ワイヤフォーマットを独立して管理します。
var proportionTokens = map[Proportion]string{
	ProportionLandscape: "landscape",
	ProportionPortrait:  "portrait",
	ProportionSquare:    "square",
	ProportionWide:      "wide",
}

func (p Proportion) wireToken() string {
	if token, ok := proportionTokens[p]; ok {
		return token
	}
	return "landscape"
}

// String はワイヤ上のトークンをそのまま返します。
func (p Proportion) String() string {
	return p.wireToken()
}

// UpscalingFactor は upscale エンドポイントの拡大倍率です。
// ゼロ値は Factor2 として扱われます。
type UpscalingFactor int

const (
	Factor2 UpscalingFactor = iota
	Factor4
	Factor8
)

// factorValues はワイヤ上の数値への明示的な対応表です。
var factorValues = map[UpscalingFactor]int{
	Factor2: 2,
	Factor4: 4,
	Factor8: 8,
}

func (f UpscalingFactor) wireValue() int {
	if value, ok := factorValues[f]; ok {
		return value
	}
	return 2
}
