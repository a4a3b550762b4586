package imagepig

// GenerateRequest は default / xl エンドポイントへのテキスト生成要求です。
type GenerateRequest struct {
	// Prompt は必須の生成プロンプトです。
	Prompt string
	// NegativePrompt は省略可能です。未設定でも空文字列のキーとして常に送信されます。
	NegativePrompt string
	// Extra は追加のワイヤパラメータです。ビルダー管理キーと衝突した場合は
	// ビルダー側が優先されます。
	Extra map[string]any
}

// FluxRequest は flux エンドポイントへのテキスト生成要求です。
type FluxRequest struct {
	Prompt string
	// Proportion のゼロ値は landscape です。
	Proportion Proportion
	Extra      map[string]any
}

// FaceSwapRequest は 2 枚の画像間の顔入れ替え要求です。
type FaceSwapRequest struct {
	SourceImage ImageInput
	TargetImage ImageInput
	Extra       map[string]any
}

// UpscaleRequest は画像の拡大要求です。
type UpscaleRequest struct {
	Image ImageInput
	// Factor のゼロ値は 2 倍です。
	Factor UpscalingFactor
	Extra  map[string]any
}

// CutoutRequest は背景除去の要求です。
type CutoutRequest struct {
	Image ImageInput
	Extra map[string]any
}

// ReplaceRequest はプロンプトで選択した領域の置換要求です。
type ReplaceRequest struct {
	Image ImageInput
	// SelectPrompt は置換対象を選択するプロンプトです。
	SelectPrompt   string
	Prompt         string
	NegativePrompt string
	Extra          map[string]any
}

// OutpaintRequest は画像の外側への拡張描画の要求です。
// 各マージンは非負のピクセル数で、ゼロ値は 0 として送信されます。
type OutpaintRequest struct {
	Image          ImageInput
	Prompt         string
	NegativePrompt string
	Top            int
	Right          int
	Bottom         int
	Left           int
	Extra          map[string]any
}
