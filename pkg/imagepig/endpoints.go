package imagepig

import "context"

// textParams は default / xl 共通のパラメータを組み立てます。
// negative_prompt は未設定でも空文字列のキーとして必ず含まれます。
func textParams(req GenerateRequest) map[string]any {
	params := newParams(req.Extra)
	params["positive_prompt"] = req.Prompt
	params["negative_prompt"] = req.NegativePrompt
	return params
}

// Generate は既定モデルによるテキストからの画像生成を行います。
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*APIResponse, error) {
	return c.call(ctx, "", textParams(req))
}

// GenerateXL は XL モデルによるテキストからの画像生成を行います。
func (c *Client) GenerateXL(ctx context.Context, req GenerateRequest) (*APIResponse, error) {
	return c.call(ctx, "xl", textParams(req))
}

// GenerateFlux は FLUX モデルによるテキストからの画像生成を行います。
func (c *Client) GenerateFlux(ctx context.Context, req FluxRequest) (*APIResponse, error) {
	params := newParams(req.Extra)
	params["positive_prompt"] = req.Prompt
	params["proportion"] = req.Proportion.wireToken()
	return c.call(ctx, "flux", params)
}

// FaceSwap は source から target への顔の入れ替えを行います。
func (c *Client) FaceSwap(ctx context.Context, req FaceSwapRequest) (*APIResponse, error) {
	params := newParams(req.Extra)
	if err := prepareImage(req.SourceImage, "source_image", params); err != nil {
		return nil, err
	}
	if err := prepareImage(req.TargetImage, "target_image", params); err != nil {
		return nil, err
	}
	return c.call(ctx, "faceswap", params)
}

// Upscale は画像の拡大を行います。
func (c *Client) Upscale(ctx context.Context, req UpscaleRequest) (*APIResponse, error) {
	params := newParams(req.Extra)
	if err := prepareImage(req.Image, "image", params); err != nil {
		return nil, err
	}
	params["upscaling_factor"] = req.Factor.wireValue()
	return c.call(ctx, "upscale", params)
}

// Cutout は背景の除去を行います。
func (c *Client) Cutout(ctx context.Context, req CutoutRequest) (*APIResponse, error) {
	params := newParams(req.Extra)
	if err := prepareImage(req.Image, "image", params); err != nil {
		return nil, err
	}
	return c.call(ctx, "cutout", params)
}

// Replace は select prompt で選択した領域をプロンプトに従って置換します。
func (c *Client) Replace(ctx context.Context, req ReplaceRequest) (*APIResponse, error) {
	params := newParams(req.Extra)
	if err := prepareImage(req.Image, "image", params); err != nil {
		return nil, err
	}
	params["select_prompt"] = req.SelectPrompt
	params["positive_prompt"] = req.Prompt
	params["negative_prompt"] = req.NegativePrompt
	return c.call(ctx, "replace", params)
}

// Outpaint は画像の外側への拡張描画を行います。マージンの既定値は 0 です。
func (c *Client) Outpaint(ctx context.Context, req OutpaintRequest) (*APIResponse, error) {
	params := newParams(req.Extra)
	if err := prepareImage(req.Image, "image", params); err != nil {
		return nil, err
	}
	params["positive_prompt"] = req.Prompt
	params["negative_prompt"] = req.NegativePrompt
	params["top"] = req.Top
	params["right"] = req.Right
	params["bottom"] = req.Bottom
	params["left"] = req.Left
	return c.call(ctx, "outpaint", params)
}
