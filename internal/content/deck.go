package content

import (
	"fmt"
	"strings"
)

const (
	DeckKind               = "deck"
	SupportedSchemaVersion = 1

	// LevelMessages is the number of heart messages, one per level 0..5.
	LevelMessages = 6
)

// Deck is every piece of copy the greeting shows.
type Deck struct {
	Kind          string `yaml:"kind"`
	SchemaVersion int    `yaml:"schema_version"`

	Landing       LandingCopy  `yaml:"landing"`
	HeartMessages []string     `yaml:"heart_messages"`
	Mascot        MascotCopy   `yaml:"mascot"`
	Question      QuestionCopy `yaml:"question"`
	Note          NoteCopy     `yaml:"note"`
	Finale        FinaleCopy   `yaml:"finale"`

	Path string `yaml:"-"`
}

type LandingCopy struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Yes      string `yaml:"yes"`
	No       string `yaml:"no"`
}

type MascotCopy struct {
	Idle     string `yaml:"idle"`
	Complete string `yaml:"complete"`
}

type QuestionCopy struct {
	Prompt      string   `yaml:"prompt"`
	Yes         string   `yaml:"yes"`
	No          string   `yaml:"no"`
	NoResponses []string `yaml:"no_responses"`
}

type NoteCopy struct {
	Heading  string   `yaml:"heading"`
	Greeting string   `yaml:"greeting"`
	Lines    []string `yaml:"lines"`
}

type FinaleCopy struct {
	CardMD string `yaml:"card_md"`
}

func Default() Deck {
	return Deck{
		Kind:          DeckKind,
		SchemaVersion: SupportedSchemaVersion,
		Landing: LandingCopy{
			Title:    "Hey you 💌",
			Subtitle: "I made you a little something. Want to see it?",
			Yes:      "Yes 💖",
			No:       "No",
		},
		HeartMessages: []string{
			"Warming up the heart 💗",
			"Feeling the love 💕",
			"Getting warmer 🔥",
			"Almost there 💖",
			"So close! ✨",
			"Heart is full! 💝",
		},
		Mascot: MascotCopy{
			Idle:     "Tap the hearts to fill mine 🥺",
			Complete: "Heart warming up 💕",
		},
		Question: QuestionCopy{
			Prompt: "Will you be my Valentine? 💘",
			Yes:    "Yes 💖",
			No:     "No 🙈",
			NoResponses: []string{
				"You have no choice now, cutie 😌💘",
				"Please accept 🥺👉👈",
				"Accept already 😤💖",
			},
		},
		Note: NoteCopy{
			Heading:  "Happy Valentine's Day 💖",
			Greeting: "Dear %s,",
			Lines: []string{
				"You make ordinary days feel special 🌷",
				"Every moment with you is a gift ✨",
				"Thank you for being you 💝",
			},
		},
		Finale: FinaleCopy{
			CardMD: "# Yay! 💞\n\nYou just made my day.\n\n*Press* **r** *to start over.*",
		},
	}
}

func (d Deck) Validate() error {
	if d.Kind != DeckKind {
		return fmt.Errorf("kind must be %q", DeckKind)
	}
	if d.SchemaVersion == 0 {
		return fmt.Errorf("schema_version is required")
	}
	if d.SchemaVersion > SupportedSchemaVersion {
		return fmt.Errorf("unsupported deck schema_version %d (max supported %d)", d.SchemaVersion, SupportedSchemaVersion)
	}
	if len(d.HeartMessages) != LevelMessages {
		return fmt.Errorf("heart_messages must have exactly %d entries, got %d", LevelMessages, len(d.HeartMessages))
	}
	for i, m := range d.HeartMessages {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("heart_messages[%d] is empty", i)
		}
	}
	if len(d.Question.NoResponses) == 0 {
		return fmt.Errorf("question.no_responses needs at least one entry")
	}
	if strings.TrimSpace(d.Note.Heading) == "" {
		return fmt.Errorf("note.heading is required")
	}
	if g := d.Note.Greeting; g != "" && strings.Count(g, "%s") != 1 {
		return fmt.Errorf("note.greeting must contain exactly one %%s, got %q", g)
	}
	return nil
}

// Merge fills every empty field of d from base.
func (d Deck) Merge(base Deck) Deck {
	out := d
	out.Kind = firstNonEmpty(d.Kind, base.Kind)
	if out.SchemaVersion == 0 {
		out.SchemaVersion = base.SchemaVersion
	}
	out.Landing.Title = firstNonEmpty(d.Landing.Title, base.Landing.Title)
	out.Landing.Subtitle = firstNonEmpty(d.Landing.Subtitle, base.Landing.Subtitle)
	out.Landing.Yes = firstNonEmpty(d.Landing.Yes, base.Landing.Yes)
	out.Landing.No = firstNonEmpty(d.Landing.No, base.Landing.No)
	if len(out.HeartMessages) == 0 {
		out.HeartMessages = append([]string(nil), base.HeartMessages...)
	}
	out.Mascot.Idle = firstNonEmpty(d.Mascot.Idle, base.Mascot.Idle)
	out.Mascot.Complete = firstNonEmpty(d.Mascot.Complete, base.Mascot.Complete)
	out.Question.Prompt = firstNonEmpty(d.Question.Prompt, base.Question.Prompt)
	out.Question.Yes = firstNonEmpty(d.Question.Yes, base.Question.Yes)
	out.Question.No = firstNonEmpty(d.Question.No, base.Question.No)
	if len(out.Question.NoResponses) == 0 {
		out.Question.NoResponses = append([]string(nil), base.Question.NoResponses...)
	}
	out.Note.Heading = firstNonEmpty(d.Note.Heading, base.Note.Heading)
	out.Note.Greeting = firstNonEmpty(d.Note.Greeting, base.Note.Greeting)
	if len(out.Note.Lines) == 0 {
		out.Note.Lines = append([]string(nil), base.Note.Lines...)
	}
	out.Finale.CardMD = firstNonEmpty(d.Finale.CardMD, base.Finale.CardMD)
	return out
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}
