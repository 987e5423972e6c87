// Package service wires the MCP protocol transport to the catalog tools.
//
// It owns the store lifecycle and transport choice; tool semantics live in
// the domain package.
package service
