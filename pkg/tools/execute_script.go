package tools

import (
	"context"

	"github.com/entrhq/browsermcp/pkg/browser"
)

// ExecuteScriptInput holds the parameters for execute_javascript.
type ExecuteScriptInput struct {
	Script string        `json:"script" jsonschema:"JavaScript code to execute in the page context"`
	Args   []interface{} `json:"args,omitempty" jsonschema:"Optional arguments made available to the script"`
}

// ExecuteScriptOutput carries the script's return value.
type ExecuteScriptOutput struct {
	Success bool        `json:"success" jsonschema:"Execution success status"`
	Result  interface{} `json:"result" jsonschema:"Value returned by the script"`
}

// ExecuteScript runs JavaScript in the page context of the calling
// context's session and returns its value.
func (a *Adapter) ExecuteScript(ctx context.Context, contextID string, in ExecuteScriptInput) (ExecuteScriptOutput, error) {
	if in.Script == "" {
		return ExecuteScriptOutput{}, browser.NewError(browser.KindInvalidArgument, "script is required")
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	session, err := a.registry.Resolve(ctx, contextID)
	if err != nil {
		return ExecuteScriptOutput{}, err
	}

	result, err := session.ExecuteScript(ctx, in.Script, in.Args)
	if err != nil {
		return ExecuteScriptOutput{}, err
	}

	return ExecuteScriptOutput{
		Success: true,
		Result:  result,
	}, nil
}
