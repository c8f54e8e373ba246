// Package tools implements the MCP tool surface of the server.
//
// Each tool is a pure request/response operation over a session resolved
// from the calling context: validate input, resolve or create the browser
// session through the registry, perform the backend operation, translate
// the result. Handlers never touch another context's session; all state
// mutation goes through the registry's resolve and close paths.
//
// Input validation happens before any backend call: a malformed URL or an
// unknown locator strategy fails with InvalidArgument without a network
// round-trip. Backend failures surface as kind-tagged errors which the MCP
// layer reports as failed tool results, never as protocol errors.
package tools
