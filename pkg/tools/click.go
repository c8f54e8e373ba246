package tools

import (
	"context"
)

// ClickOutput describes the page after a click.
type ClickOutput struct {
	Success  bool   `json:"success" jsonschema:"Click success status"`
	NewTitle string `json:"new_title" jsonschema:"Page title after the click"`
	NewURL   string `json:"new_url" jsonschema:"URL after the click"`
}

// Click locates an element in the calling context's session and clicks it,
// waiting for any resulting navigation to settle.
func (a *Adapter) Click(ctx context.Context, contextID string, in ElementInput) (ClickOutput, error) {
	strategy, err := resolveLocator(in)
	if err != nil {
		return ClickOutput{}, err
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	session, err := a.registry.Resolve(ctx, contextID)
	if err != nil {
		return ClickOutput{}, err
	}

	state, err := session.Click(ctx, strategy, in.Selector)
	if err != nil {
		return ClickOutput{}, err
	}

	a.log.Debugf("Context %q clicked %s=%q", contextID, strategy, in.Selector)
	return ClickOutput{
		Success:  true,
		NewTitle: state.Title,
		NewURL:   state.URL,
	}, nil
}
