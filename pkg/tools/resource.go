package tools

import (
	"context"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// resourceScheme prefixes browser content resource URIs.
const resourceScheme = "browser://"

// PageContent navigates the calling context's session to a URL and returns
// the page HTML. Backs the browser://{url} resource.
func (a *Adapter) PageContent(ctx context.Context, contextID, rawURL string) (string, error) {
	if err := validateURL(rawURL); err != nil {
		return "", err
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	session, err := a.registry.Resolve(ctx, contextID)
	if err != nil {
		return "", err
	}

	if _, err := session.Navigate(ctx, rawURL); err != nil {
		return "", err
	}

	return session.Source(ctx)
}

// RegisterResource wires the browser content resource into the MCP server.
func RegisterResource(server *mcp.Server, a *Adapter) {
	server.AddResourceTemplate(&mcp.ResourceTemplate{
		Name:        "browser",
		URITemplate: resourceScheme + "{url}",
		Description: "HTML content of a URL fetched through browser automation.",
		MIMEType:    "text/html",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		target := strings.TrimPrefix(req.Params.URI, resourceScheme)
		if decoded, err := url.PathUnescape(target); err == nil {
			target = decoded
		}

		html, err := a.PageContent(ctx, contextID(req.Session), target)
		if err != nil {
			return nil, err
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      req.Params.URI,
					MIMEType: "text/html",
					Text:     html,
				},
			},
		}, nil
	})
}
