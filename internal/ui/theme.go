package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

type Theme struct {
	Header      lipgloss.Style
	Status      lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Body        lipgloss.Style
	Button      lipgloss.Style
	ButtonAlt   lipgloss.Style
	Bubble      lipgloss.Style
	Note        lipgloss.Style
	PanelBorder lipgloss.Style
	Accent      lipgloss.Style
	Muted       lipgloss.Style
	Fail        lipgloss.Style
	Heart       lipgloss.Style
	Collected   lipgloss.Style
	Floating    lipgloss.Style

	// FillColors feed the heart fill gradient.
	FillColors []color.Color
	Markdown   string
}

func DefaultTheme() Theme {
	return ThemeForVariant("rose_garden")
}

func ThemeForVariant(variant string) Theme {
	switch variant {
	case "midnight":
		return midnightTheme()
	case "paper":
		return paperTheme()
	default:
		return roseGardenTheme()
	}
}

func roseGardenTheme() Theme {
	rose := lipgloss.Color("#FF6B9D")
	blush := lipgloss.Color("#FFB6C1")
	plum := lipgloss.Color("#DDA0DD")
	cream := lipgloss.Color("#FFF4E6")
	wine := lipgloss.Color("#3A1024")
	berry := lipgloss.Color("#5C1A3A")

	return Theme{
		Header: lipgloss.NewStyle().
			Background(wine).
			Foreground(cream).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Background(berry).
			Foreground(cream).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(rose).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(plum).
			Italic(true),
		Body: lipgloss.NewStyle().
			Foreground(cream),
		Button: lipgloss.NewStyle().
			Background(rose).
			Foreground(cream).
			Bold(true).
			Padding(0, 2),
		ButtonAlt: lipgloss.NewStyle().
			Background(berry).
			Foreground(blush).
			Padding(0, 2),
		Bubble: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(plum).
			Foreground(cream).
			Padding(0, 1),
		Note: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(rose).
			Foreground(cream).
			Padding(1, 2),
		PanelBorder: lipgloss.NewStyle().Foreground(berry),
		Accent:      lipgloss.NewStyle().Foreground(rose).Bold(true),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("#B08497")),
		Fail:        lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4F4F")).Bold(true),
		Heart:       lipgloss.NewStyle().Foreground(rose),
		Collected:   lipgloss.NewStyle().Foreground(blush).Faint(true),
		Floating:    lipgloss.NewStyle().Foreground(plum).Faint(true),
		FillColors:  []color.Color{blush, rose, lipgloss.Color("#E0245E")},
		Markdown:    "dark",
	}
}

func midnightTheme() Theme {
	violet := lipgloss.Color("#B39DDB")
	pink := lipgloss.Color("#F48FB1")
	ink := lipgloss.Color("#0E1420")
	slate := lipgloss.Color("#1B2740")
	powder := lipgloss.Color("#EAF2FF")

	return Theme{
		Header:      lipgloss.NewStyle().Background(ink).Foreground(powder).Padding(0, 1),
		Status:      lipgloss.NewStyle().Background(slate).Foreground(powder).Padding(0, 1),
		Title:       lipgloss.NewStyle().Foreground(pink).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(violet),
		Body:        lipgloss.NewStyle().Foreground(powder),
		Button:      lipgloss.NewStyle().Background(pink).Foreground(ink).Bold(true).Padding(0, 2),
		ButtonAlt:   lipgloss.NewStyle().Background(slate).Foreground(violet).Padding(0, 2),
		Bubble:      lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(violet).Foreground(powder).Padding(0, 1),
		Note:        lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(pink).Foreground(powder).Padding(1, 2),
		PanelBorder: lipgloss.NewStyle().Foreground(slate),
		Accent:      lipgloss.NewStyle().Foreground(pink).Bold(true),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("#9CAAC6")),
		Fail:        lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6F91")).Bold(true),
		Heart:       lipgloss.NewStyle().Foreground(pink),
		Collected:   lipgloss.NewStyle().Foreground(violet).Faint(true),
		Floating:    lipgloss.NewStyle().Foreground(lipgloss.Color("#4B5F8A")),
		FillColors:  []color.Color{violet, pink},
		Markdown:    "dark",
	}
}

func paperTheme() Theme {
	red := lipgloss.Color("#C0392B")
	ink := lipgloss.Color("#2B2B2B")
	paper := lipgloss.Color("#FBF7F0")
	sand := lipgloss.Color("#E8DCC8")

	return Theme{
		Header:      lipgloss.NewStyle().Background(sand).Foreground(ink).Padding(0, 1),
		Status:      lipgloss.NewStyle().Background(sand).Foreground(ink).Padding(0, 1),
		Title:       lipgloss.NewStyle().Foreground(red).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(ink).Italic(true),
		Body:        lipgloss.NewStyle().Foreground(ink),
		Button:      lipgloss.NewStyle().Background(red).Foreground(paper).Bold(true).Padding(0, 2),
		ButtonAlt:   lipgloss.NewStyle().Background(sand).Foreground(ink).Padding(0, 2),
		Bubble:      lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(ink).Foreground(ink).Padding(0, 1),
		Note:        lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(red).Foreground(ink).Padding(1, 2),
		PanelBorder: lipgloss.NewStyle().Foreground(sand),
		Accent:      lipgloss.NewStyle().Foreground(red).Bold(true),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8178")),
		Fail:        lipgloss.NewStyle().Foreground(red).Bold(true),
		Heart:       lipgloss.NewStyle().Foreground(red),
		Collected:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8178")),
		Floating:    lipgloss.NewStyle().Foreground(sand),
		FillColors:  []color.Color{lipgloss.Color("#E8A09A"), red},
		Markdown:    "light",
	}
}
