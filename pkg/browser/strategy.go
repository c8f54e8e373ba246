package browser

import (
	"strings"

	"github.com/tebeka/selenium"
)

// Strategy is a locator strategy for element queries.
type Strategy string

const (
	StrategyCSS             Strategy = "css"
	StrategyXPath           Strategy = "xpath"
	StrategyID              Strategy = "id"
	StrategyName            Strategy = "name"
	StrategyClassName       Strategy = "class_name"
	StrategyTagName         Strategy = "tag_name"
	StrategyLinkText        Strategy = "link_text"
	StrategyPartialLinkText Strategy = "partial_link_text"
)

// locators maps each strategy to its WebDriver locator keyword.
var locators = map[Strategy]string{
	StrategyCSS:             selenium.ByCSSSelector,
	StrategyXPath:           selenium.ByXPATH,
	StrategyID:              selenium.ByID,
	StrategyName:            selenium.ByName,
	StrategyClassName:       selenium.ByClassName,
	StrategyTagName:         selenium.ByTagName,
	StrategyLinkText:        selenium.ByLinkText,
	StrategyPartialLinkText: selenium.ByPartialLinkText,
}

// ParseStrategy validates a strategy name, defaulting to css when empty.
// Unrecognized values fail with InvalidArgument before any backend call.
func ParseStrategy(raw string) (Strategy, error) {
	if raw == "" {
		return StrategyCSS, nil
	}

	s := Strategy(strings.ToLower(raw))
	if _, ok := locators[s]; !ok {
		return "", NewError(KindInvalidArgument,
			"unknown locator strategy %q (must be one of: css, xpath, id, name, class_name, tag_name, link_text, partial_link_text)", raw)
	}
	return s, nil
}

// Locator returns the WebDriver locator keyword for this strategy.
func (s Strategy) Locator() string {
	return locators[s]
}
