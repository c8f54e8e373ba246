package tools

import (
	"context"
)

// CloseBrowserInput holds the (empty) parameters for close_browser.
type CloseBrowserInput struct{}

// CloseBrowserOutput confirms the close.
type CloseBrowserOutput struct {
	Success bool   `json:"success" jsonschema:"Close success status"`
	Message string `json:"message" jsonschema:"Status message"`
}

// CloseBrowser terminates the calling context's session. Closing a context
// with no open session succeeds; the operation is idempotent.
func (a *Adapter) CloseBrowser(ctx context.Context, contextID string) (CloseBrowserOutput, error) {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	a.registry.Close(ctx, contextID)
	return CloseBrowserOutput{
		Success: true,
		Message: "Browser session closed",
	}, nil
}
