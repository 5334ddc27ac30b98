package ports

// Navigator is the push-style view navigation contract the session screen
// depends on. The TUI owns the real stack; the session code only issues
// commands and inspects the active view's identity.
type Navigator interface {
	Push(view string)
	Pop() string
	Current() string
}
