package tools

import (
	"context"
)

// NavigateInput holds the parameters for navigate_to_url.
type NavigateInput struct {
	URL string `json:"url" jsonschema:"URL to navigate to (must include protocol, e.g. https://example.com)"`
}

// NavigateOutput describes the page after navigation.
type NavigateOutput struct {
	Title      string `json:"title" jsonschema:"Page title"`
	CurrentURL string `json:"current_url" jsonschema:"Current URL after navigation"`
	Success    bool   `json:"success" jsonschema:"Navigation success status"`
}

// Navigate loads a URL in the calling context's session, creating the
// session on first use.
func (a *Adapter) Navigate(ctx context.Context, contextID string, in NavigateInput) (NavigateOutput, error) {
	if err := validateURL(in.URL); err != nil {
		return NavigateOutput{}, err
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	session, err := a.registry.Resolve(ctx, contextID)
	if err != nil {
		return NavigateOutput{}, err
	}

	state, err := session.Navigate(ctx, in.URL)
	if err != nil {
		return NavigateOutput{}, err
	}

	a.log.Debugf("Context %q navigated to %s", contextID, state.URL)
	return NavigateOutput{
		Title:      state.Title,
		CurrentURL: state.URL,
		Success:    true,
	}, nil
}
