package gemini

import "strings"

// DefaultInstructions is the system preamble used when the caller does not
// override it.
const DefaultInstructions = "Tu es un assistant qui répond en français avec des références à la construction au Québec."

// BuildPrompt assembles system instructions, the retrieved context and the
// question into a single prompt.
func BuildPrompt(question, context, instructions string) string {
	if instructions == "" {
		instructions = DefaultInstructions
	}
	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\nContexte pertinent :\n")
	sb.WriteString(context)
	sb.WriteString("\n\nQuestion : ")
	sb.WriteString(question)
	sb.WriteString("\nRéponds de manière concise tout en citant les extraits pertinents.")
	return sb.String()
}
