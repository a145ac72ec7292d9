package platform

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Window contains metadata and geometry for a top-level window.
type Window struct {
	ID     WindowID
	PID    int
	AppID  string
	Title  string
	Bounds Rect
}

// Backend abstracts window-system operations across platforms.
//
// WindowsForPID returns the currently visible top-level windows owned by
// the given process, sorted ascending by window ID so that callers get a
// deterministic first element.
type Backend interface {
	WindowsForPID(pid int) ([]Window, error)
	Minimize(windowID WindowID) error
	Maximize(windowID WindowID) error
	Restore(windowID WindowID) error
	Move(windowID WindowID, x, y int) error
	Resize(windowID WindowID, width, height int) error
}
