package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// defaultContextID is used when the transport supplies no session identity,
// which collapses to the original one-session-per-process behavior over
// stdio with a single client.
const defaultContextID = "default"

// contextID derives the calling context from the MCP session. Sessions are
// assigned by the protocol layer, never chosen by the tools.
func contextID(session *mcp.ServerSession) string {
	if session != nil {
		if id := session.ID(); id != "" {
			return id
		}
	}
	return defaultContextID
}

// Register wires every browser tool into the MCP server.
func Register(server *mcp.Server, a *Adapter) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "navigate_to_url",
		Description: "Navigate to a URL and return page information.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in NavigateInput) (*mcp.CallToolResult, NavigateOutput, error) {
		out, err := a.Navigate(ctx, contextID(req.Session), in)
		return nil, out, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_element",
		Description: "Find an element on the current page.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in ElementInput) (*mcp.CallToolResult, FindElementOutput, error) {
		out, err := a.FindElement(ctx, contextID(req.Session), in)
		return nil, out, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "click_element",
		Description: "Click on an element on the current page.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in ElementInput) (*mcp.CallToolResult, ClickOutput, error) {
		out, err := a.Click(ctx, contextID(req.Session), in)
		return nil, out, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "execute_javascript",
		Description: "Execute JavaScript in the current page context.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in ExecuteScriptInput) (*mcp.CallToolResult, ExecuteScriptOutput, error) {
		out, err := a.ExecuteScript(ctx, contextID(req.Session), in)
		return nil, out, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "take_screenshot",
		Description: "Take a screenshot of the current page.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in ScreenshotInput) (*mcp.CallToolResult, ScreenshotOutput, error) {
		raw, out, err := a.TakeScreenshot(ctx, contextID(req.Session))
		if err != nil {
			return nil, ScreenshotOutput{}, err
		}
		result := &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.ImageContent{Data: raw, MIMEType: "image/png"},
			},
		}
		return result, out, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_page_info",
		Description: "Get information about the current page.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in PageInfoInput) (*mcp.CallToolResult, PageInfoOutput, error) {
		out, err := a.GetPageInfo(ctx, contextID(req.Session))
		return nil, out, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "close_browser",
		Description: "Close the current browser session.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in CloseBrowserInput) (*mcp.CallToolResult, CloseBrowserOutput, error) {
		out, err := a.CloseBrowser(ctx, contextID(req.Session))
		return nil, out, err
	})
}
