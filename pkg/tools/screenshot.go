package tools

import (
	"context"
	"encoding/base64"
	"fmt"
)

// ScreenshotInput holds the (empty) parameters for take_screenshot.
type ScreenshotInput struct{}

// ScreenshotOutput carries the captured image as a data URL.
type ScreenshotOutput struct {
	Screenshot string `json:"screenshot" jsonschema:"Base64 encoded screenshot data URL"`
	Success    bool   `json:"success" jsonschema:"Screenshot success status"`
}

// TakeScreenshot captures the current page of the calling context's session
// as PNG. The raw bytes are returned alongside the output so the MCP layer
// can attach an image content block.
func (a *Adapter) TakeScreenshot(ctx context.Context, contextID string) ([]byte, ScreenshotOutput, error) {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	session, err := a.registry.Resolve(ctx, contextID)
	if err != nil {
		return nil, ScreenshotOutput{}, err
	}

	data, err := session.Screenshot(ctx)
	if err != nil {
		return nil, ScreenshotOutput{}, err
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return data, ScreenshotOutput{
		Screenshot: fmt.Sprintf("data:image/png;base64,%s", encoded),
		Success:    true,
	}, nil
}
