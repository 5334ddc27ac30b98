package ui

import "ferro/internal/ports"

// View names managed by the navigator
const (
	ViewLogging = "logging"
	ViewNote    = "note"
	ViewFinish  = "finish"
	ViewSummary = "summary"
	ViewHelp    = "help"
)

// StackNavigator implements ports.Navigator with a plain view stack.
// The logging view is the permanent bottom element.
type StackNavigator struct {
	stack []string
}

// Verify interface compliance at compile time
var _ ports.Navigator = (*StackNavigator)(nil)

// NewStackNavigator creates a navigator rooted at the logging view
func NewStackNavigator() *StackNavigator {
	return &StackNavigator{stack: []string{ViewLogging}}
}

// Push makes the given view current
func (n *StackNavigator) Push(view string) {
	n.stack = append(n.stack, view)
}

// Pop removes the current view and returns the newly current one.
// The root view is never popped.
func (n *StackNavigator) Pop() string {
	if len(n.stack) > 1 {
		n.stack = n.stack[:len(n.stack)-1]
	}
	return n.stack[len(n.stack)-1]
}

// Current returns the active view's name
func (n *StackNavigator) Current() string {
	return n.stack[len(n.stack)-1]
}
