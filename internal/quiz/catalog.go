package quiz

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// UI message keys.
const (
	KeyCorrect      = "correct_toast"
	KeyIncorrect    = "incorrect_toast"
	KeyJudgment     = "judgment_toast"
	KeyScore        = "score_toast"
	KeyWarning      = "warning_text"
	KeyShowAnswer   = "show_answer_button"
	KeyCheat        = "cheat_button"
	KeyTrue         = "true_button"
	KeyFalse        = "false_button"
	KeyNext         = "next_button"
	KeyPrevious     = "previous_button"
	KeyFinish       = "finish_button"
	KeyAnswerReveal = "answer_reveal"
)

// supported lists the catalog languages; the first entry is the fallback.
var supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(supported)

var messages = map[language.Tag]map[string]string{
	language.English: {
		KeyAustralia:    "Canberra is the capital of Australia.",
		KeyOceans:       "The Pacific Ocean is larger than the Atlantic Ocean.",
		KeyMideast:      "The Suez Canal connects the Red Sea and the Indian Ocean.",
		KeyAfrica:       "The source of the Nile River is in Egypt.",
		KeyAmericas:     "The Amazon River is the longest river in the Americas.",
		KeyAsia:         "Lake Baikal is the world's oldest and deepest freshwater lake.",
		KeyCorrect:      "Correct!",
		KeyIncorrect:    "Incorrect!",
		KeyJudgment:     "Cheating is wrong.",
		KeyScore:        "You scored %.1f%%",
		KeyWarning:      "Are you sure you want to do this?",
		KeyShowAnswer:   "Show Answer",
		KeyCheat:        "Cheat!",
		KeyTrue:         "True",
		KeyFalse:        "False",
		KeyNext:         "Next",
		KeyPrevious:     "Previous",
		KeyFinish:       "Finish",
		KeyAnswerReveal: "The answer is %s.",
	},
	language.Spanish: {
		KeyAustralia:    "Canberra es la capital de Australia.",
		KeyOceans:       "El océano Pacífico es más grande que el océano Atlántico.",
		KeyMideast:      "El canal de Suez conecta el mar Rojo con el océano Índico.",
		KeyAfrica:       "El nacimiento del río Nilo está en Egipto.",
		KeyAmericas:     "El río Amazonas es el río más largo de América.",
		KeyAsia:         "El lago Baikal es el lago de agua dulce más antiguo y profundo del mundo.",
		KeyCorrect:      "¡Correcto!",
		KeyIncorrect:    "¡Incorrecto!",
		KeyJudgment:     "Hacer trampa está mal.",
		KeyScore:        "Tu puntuación: %.1f%%",
		KeyWarning:      "¿Seguro que quieres hacer esto?",
		KeyShowAnswer:   "Mostrar respuesta",
		KeyCheat:        "¡Trampa!",
		KeyTrue:         "Verdadero",
		KeyFalse:        "Falso",
		KeyNext:         "Siguiente",
		KeyPrevious:     "Anterior",
		KeyFinish:       "Terminar",
		KeyAnswerReveal: "La respuesta es %s.",
	},
}

// Catalog resolves prompt and message keys to localized text.
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
}

// NewCatalog builds a catalog for the best supported match of lang
// (a BCP 47 tag such as "en", "es-MX"). Extra maps keys to text used for
// every language that has no message for that key, so custom bank prompts
// render even without translations. Extra text is literal: a % in it is
// printed as is.
func NewCatalog(lang string, extra map[string]string) (*Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(supported[0]))
	for tag, msgs := range messages {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("register %s/%s: %w", tag, key, err)
			}
		}
		for key, msg := range extra {
			if _, ok := msgs[key]; ok {
				continue
			}
			if err := b.SetString(tag, key, escapeVerbs(msg)); err != nil {
				return nil, fmt.Errorf("register %s/%s: %w", tag, key, err)
			}
		}
	}

	tag := matchLanguage(lang)
	return &Catalog{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b)),
	}, nil
}

// escapeVerbs makes text safe to register as a printf format.
func escapeVerbs(text string) string {
	return strings.ReplaceAll(text, "%", "%%")
}

// matchLanguage returns the supported tag closest to lang, or the fallback.
func matchLanguage(lang string) language.Tag {
	if lang == "" {
		return supported[0]
	}
	requested, err := language.Parse(lang)
	if err != nil {
		return supported[0]
	}
	_, idx, conf := matcher.Match(requested)
	if conf == language.No {
		return supported[0]
	}
	return supported[idx]
}

// Language returns the tag the catalog renders in.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Text returns the message for key formatted with args. Unknown keys
// render as the key itself.
func (c *Catalog) Text(key string, args ...any) string {
	return c.printer.Sprintf(key, args...)
}

// Prompt returns the localized prompt for a question.
func (c *Catalog) Prompt(q Question) string {
	return c.Text(q.TextKey)
}

// AnswerLabel returns the localized label for a boolean answer.
func (c *Catalog) AnswerLabel(answer bool) string {
	if answer {
		return c.Text(KeyTrue)
	}
	return c.Text(KeyFalse)
}
