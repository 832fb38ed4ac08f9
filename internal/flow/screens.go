package flow

import "strings"

type ScreenID string

const (
	ScreenLanding     ScreenID = "screen-landing"
	ScreenInteraction ScreenID = "screen-interaction"
	ScreenQuestion    ScreenID = "screen-question"
	ScreenNote        ScreenID = "screen-note"
	ScreenFinale      ScreenID = "screen-finale"
)

// AllScreens lists the screens in the order a visitor meets them.
func AllScreens() []ScreenID {
	return []ScreenID{ScreenLanding, ScreenInteraction, ScreenQuestion, ScreenNote, ScreenFinale}
}

// Name is the short form used in logs, flags and the session journal.
func (s ScreenID) Name() string {
	return strings.TrimPrefix(string(s), "screen-")
}

func ParseScreen(raw string) (ScreenID, bool) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(raw)), "screen-")
	for _, s := range AllScreens() {
		if s.Name() == name {
			return s, true
		}
	}
	return "", false
}

// Element ids shared between the greeting and the page layout.
const (
	ElemBackground  = "bgHearts"
	ElemBursts      = "burstLayer"
	ElemMusic       = "musicBtn"
	ElemLandingText = "landingTitle"
	ElemLandingSub  = "landingSubtitle"
	ElemLandingYes  = "landingYesBtn"
	ElemLandingNo   = "landingNoBtn"
	ElemHeartFill   = "heartFill"
	ElemHeartText   = "heartText"
	ElemTapArea     = "interactiveArea"
	ElemMascot      = "mascotSpeech"
	ElemPrompt      = "questionPrompt"
	ElemYes         = "yesBtn"
	ElemNo          = "noBtn"
	ElemNoBubble    = "noResponseBubble"
	ElemNote        = "noteContent"
	ElemConfetti    = "confettiContainer"
	ElemFinaleCard  = "finaleCard"
)

// Attribute keys and classes the layout reads back.
const (
	AttrLevel     = "data-level"
	AttrDisplay   = "display"
	AttrAnimation = "animation"
	AttrX         = "x"
	AttrY         = "y"
	AttrColor     = "color"
	AttrSize      = "size"
	AttrDuration  = "duration"
	AttrDelay     = "delay"

	ClassCollected = "collected"
	ClassPulse     = "pulse"
	ClassWobble    = "wobble"
	ClassFull      = "full"
	ClassExcited   = "excited"
	ClassPlaying   = "playing"
)
