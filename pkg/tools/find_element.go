package tools

import (
	"context"

	"github.com/entrhq/browsermcp/pkg/browser"
)

// ElementInput holds the parameters for element operations. The locator
// strategy defaults to css when omitted.
type ElementInput struct {
	Selector string `json:"selector" jsonschema:"CSS selector, XPath expression, or other locator value"`
	By       string `json:"by,omitempty" jsonschema:"Locator strategy: css, xpath, id, name, class_name, tag_name, link_text, or partial_link_text (default css)"`
}

// Location is an element's position on the page.
type Location struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Dimensions is an element's rendered size.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// FindElementOutput describes a located element.
type FindElementOutput struct {
	TagName    string            `json:"tag_name" jsonschema:"HTML tag name"`
	Text       string            `json:"text" jsonschema:"Element text content"`
	Attributes map[string]string `json:"attributes" jsonschema:"Common element attributes (id, class, name, href, src) when present"`
	Location   Location          `json:"location" jsonschema:"Element location on page"`
	Size       Dimensions        `json:"size" jsonschema:"Element size"`
}

// resolveLocator validates the element input before any backend call.
func resolveLocator(in ElementInput) (browser.Strategy, error) {
	if in.Selector == "" {
		return "", browser.NewError(browser.KindInvalidArgument, "selector is required")
	}
	return browser.ParseStrategy(in.By)
}

// FindElement locates the first element matching the selector in the
// calling context's session.
func (a *Adapter) FindElement(ctx context.Context, contextID string, in ElementInput) (FindElementOutput, error) {
	strategy, err := resolveLocator(in)
	if err != nil {
		return FindElementOutput{}, err
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	session, err := a.registry.Resolve(ctx, contextID)
	if err != nil {
		return FindElementOutput{}, err
	}

	info, err := session.FindElement(ctx, strategy, in.Selector)
	if err != nil {
		return FindElementOutput{}, err
	}

	return FindElementOutput{
		TagName:    info.TagName,
		Text:       info.Text,
		Attributes: info.Attributes,
		Location:   Location{X: info.Location.X, Y: info.Location.Y},
		Size:       Dimensions{Width: info.Size.Width, Height: info.Size.Height},
	}, nil
}
