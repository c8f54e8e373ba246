package tools

import (
	"context"
)

// PageInfoInput holds the (empty) parameters for get_page_info.
type PageInfoInput struct{}

// PageInfoOutput describes the current page.
type PageInfoOutput struct {
	Title            string `json:"title" jsonschema:"Page title"`
	URL              string `json:"url" jsonschema:"Current URL"`
	PageSourceLength int    `json:"page_source_length" jsonschema:"Length of the page source in bytes"`
	WindowHandle     string `json:"window_handle" jsonschema:"Current window handle"`
}

// GetPageInfo reports the current page of the calling context's session.
func (a *Adapter) GetPageInfo(ctx context.Context, contextID string) (PageInfoOutput, error) {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	session, err := a.registry.Resolve(ctx, contextID)
	if err != nil {
		return PageInfoOutput{}, err
	}

	details, err := session.PageInfo(ctx)
	if err != nil {
		return PageInfoOutput{}, err
	}

	return PageInfoOutput{
		Title:            details.Title,
		URL:              details.URL,
		PageSourceLength: details.SourceLength,
		WindowHandle:     details.WindowHandle,
	}, nil
}
