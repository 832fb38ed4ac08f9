package ui

// Controller receives the visitor's intents. Calls are made on the UI event
// loop, so implementations may drive the greeting directly but must not
// call back into View.Post or View.Stop, which would wait on the same loop.
// OnQuit is a notification; the view exits on its own.
type Controller interface {
	OnBegin()
	OnLandingNo()
	OnTap(id string)
	OnReject()
	OnAccept()
	OnContinue()
	OnToggleMusic()
	OnReset()
	OnQuit()
}

type View interface {
	Run() error
	Stop()
	SetController(Controller)
	// Post runs fn on the UI event loop and redraws afterwards.
	Post(fn func())
	FlashStatus(msg string)
}

type LayoutMode int

const (
	LayoutWide LayoutMode = iota
	LayoutCompact
	LayoutTooSmall
)
