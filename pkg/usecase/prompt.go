package usecase

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"

	"github.com/forage-labs/stitch/pkg/domain/model"
)

//go:embed prompt/generate_system.md
var generateSystemPromptTmpl string

//go:embed prompt/draft_system.md
var draftSystemPromptTmpl string

//go:embed prompt/intent_system.md
var intentSystemPromptTmpl string

var (
	generateSystemPrompt = template.Must(template.New("generate_system").Parse(generateSystemPromptTmpl))
	draftSystemPrompt    = template.Must(template.New("draft_system").Parse(draftSystemPromptTmpl))
	intentSystemPrompt   = template.Must(template.New("intent_system").Parse(intentSystemPromptTmpl))
)

// notAvailable is the fallback for absent ticket metadata in prompts
const notAvailable = "Nicht verfügbar"

// buildGeneratePrompt composes the system and user prompts for
// suggestion generation. With similar cases present, the user prompt
// is prefixed by the serialized case-context block; without any, it is
// exactly "Kundenanfrage: <message>". Pure function of its inputs.
func buildGeneratePrompt(brand *model.BrandProfile, customerMessage string, cases []*model.SimilarCase) (string, string, error) {
	data := struct {
		Voice    string
		HasCases bool
	}{
		Voice:    brand.Voice,
		HasCases: len(cases) > 0,
	}

	var buf bytes.Buffer
	if err := generateSystemPrompt.Execute(&buf, data); err != nil {
		return "", "", goerr.Wrap(err, "failed to execute generate system prompt template")
	}
	systemPrompt := strings.TrimRight(buf.String(), "\n")

	if len(cases) == 0 {
		return systemPrompt, "Kundenanfrage: " + customerMessage, nil
	}

	blocks := make([]string, 0, len(cases))
	for _, c := range cases {
		blocks = append(blocks, fmt.Sprintf("Früherer Fall: %s\nAntwort: %s", c.Question, c.Answer))
	}
	userPrompt := strings.Join(blocks, "\n\n") + "\n\nNeue Kundenanfrage: " + customerMessage

	return systemPrompt, userPrompt, nil
}

// buildDraftPrompt composes the system and user prompts for drafting a
// reply to a full ticket conversation. The transcript is reproduced
// verbatim in the user prompt.
func buildDraftPrompt(brand *model.BrandProfile, conv *model.ConversationContext) (string, string, error) {
	orDefault := func(s string) string {
		if s == "" {
			return notAvailable
		}
		return s
	}

	data := struct {
		Voice             string
		Subject           string
		CustomerFirstName string
		Instruction       string
	}{
		Voice:             brand.Voice,
		Subject:           orDefault(conv.Subject),
		CustomerFirstName: orDefault(conv.CustomerFirstName),
		Instruction:       orDefault(conv.Instruction),
	}

	var buf bytes.Buffer
	if err := draftSystemPrompt.Execute(&buf, data); err != nil {
		return "", "", goerr.Wrap(err, "failed to execute draft system prompt template")
	}

	userPrompt := "Der Verlauf mit dem Kunden:\n\n" + conv.Conversation

	return strings.TrimRight(buf.String(), "\n"), userPrompt, nil
}

// buildIntentPrompt composes the classifier system prompt
func buildIntentPrompt(brand *model.BrandProfile) (string, error) {
	data := struct {
		BrandName string
	}{
		BrandName: brand.Name,
	}

	var buf bytes.Buffer
	if err := intentSystemPrompt.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to execute intent system prompt template")
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}
