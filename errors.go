package main

import (
	"fmt"
	"strings"
)

// CompileError is a single user-facing diagnostic with a source position.
type CompileError struct {
	Line    int
	Col     int
	Message string
}

func (e CompileError) String() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Message)
}

// ErrorCollection accumulates diagnostics in the order they are discovered.
// A run is considered failed if at least one diagnostic was added.
type ErrorCollection struct {
	Errors []CompileError
}

func NewErrorCollection() *ErrorCollection {
	return &ErrorCollection{}
}

// Add appends a diagnostic at the given source position.
func (c *ErrorCollection) Add(line, col int, message string) {
	c.Errors = append(c.Errors, CompileError{Line: line, Col: col, Message: message})
}

func (c *ErrorCollection) HasErrors() bool {
	return len(c.Errors) > 0
}

func (c *ErrorCollection) Len() int {
	return len(c.Errors)
}

// String renders one "line:col: message" per line.
func (c *ErrorCollection) String() string {
	var sb strings.Builder
	for _, e := range c.Errors {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
