// Package domain translates MCP tool calls into Siegel modular form catalog
// reads.
//
// Each tool has a schema constructor and a typed handler. Handlers depend only
// on narrow interfaces so tests can drive them without a transport.
package domain
