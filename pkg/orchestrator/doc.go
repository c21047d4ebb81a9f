// Package orchestrator wires the schema loader, render engine and output
// renderers into a single Generate call for callers that want one entry point.
package orchestrator
