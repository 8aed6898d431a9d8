package workflow

import (
	"fmt"
	"strings"
)

// EmptyContextText is the context block shown to the first phase, which has
// no prior outputs to read.
const EmptyContextText = "No prior context yet."

// ContextBlock renders the accumulated prior outputs as a single labeled
// text block: for each entry in execution order, a header line naming the
// phase (upper-cased) followed by its stored text.
func ContextBlock(state *State) string {
	if state.Len() == 0 {
		return EmptyContextText
	}

	chunks := make([]string, 0, state.Len())
	for _, entry := range state.Entries() {
		chunks = append(chunks, fmt.Sprintf("[%s OUTPUT]\n%s\n", strings.ToUpper(entry.Name), entry.Output))
	}
	return strings.Join(chunks, "\n")
}

// SystemPrompt composes the system instruction from the phase's role,
// free-text instructions, and the run topic.
func SystemPrompt(role, instructions, topic string) string {
	var sb strings.Builder
	sb.WriteString("You are a ")
	sb.WriteString(role)
	sb.WriteString(".\n\n")
	if instructions != "" {
		sb.WriteString(instructions)
		sb.WriteString("\n\n")
	}
	sb.WriteString(fmt.Sprintf("The topic is: '%s'.", topic))
	return sb.String()
}

// UserPrompt combines the rendered context block with the phase's
// instruction into the single user message sent to the endpoint.
func UserPrompt(contextBlock, instruction string) string {
	return contextBlock + "\n\n" + instruction
}
