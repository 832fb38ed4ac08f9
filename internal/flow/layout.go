package flow

import "heartnote/internal/dom"

// Mount defines the page skeleton: every screen and the named elements the
// greeting writes to. Mounting twice is harmless.
func Mount(doc *dom.Document) {
	def := func(id, parent string, kind dom.Kind) { doc.Define(id, parent, kind) }

	def(ElemBackground, dom.RootID, dom.KindContainer)
	def(ElemBursts, dom.RootID, dom.KindContainer)
	def(ElemMusic, dom.RootID, dom.KindButton)

	landing := string(ScreenLanding)
	def(landing, dom.RootID, dom.KindScreen)
	def(ElemLandingText, landing, dom.KindText)
	def(ElemLandingSub, landing, dom.KindText)
	def(ElemLandingYes, landing, dom.KindButton)
	def(ElemLandingNo, landing, dom.KindButton)

	interaction := string(ScreenInteraction)
	def(interaction, dom.RootID, dom.KindScreen)
	def(ElemHeartFill, interaction, dom.KindBlock)
	def(ElemHeartText, interaction, dom.KindText)
	def(ElemTapArea, interaction, dom.KindContainer)
	def(ElemMascot, interaction, dom.KindText)

	question := string(ScreenQuestion)
	def(question, dom.RootID, dom.KindScreen)
	def(ElemPrompt, question, dom.KindText)
	def(ElemYes, question, dom.KindButton)
	def(ElemNo, question, dom.KindButton)
	def(ElemNoBubble, question, dom.KindText)

	note := string(ScreenNote)
	def(note, dom.RootID, dom.KindScreen)
	def(ElemNote, note, dom.KindText)

	finale := string(ScreenFinale)
	def(finale, dom.RootID, dom.KindScreen)
	def(ElemFinaleCard, finale, dom.KindText)
	def(ElemConfetti, finale, dom.KindContainer)
}
