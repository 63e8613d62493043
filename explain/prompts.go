package explain

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/graphtutor/traversal"
)

const tutorSystemPrompt = "You are an expert computer science tutor."

// stateDescription lists the algorithm state the way every prompt shows it.
func stateDescription(snap traversal.Snapshot) string {
	current := "None"
	if c, ok := snap.CurrentNode(); ok {
		current = fmt.Sprint(c)
	}

	return fmt.Sprintf("Current algorithm state:\n"+
		"- %s\n"+
		"- Visited nodes: %s\n"+
		"- Current node: %s\n"+
		"- Exploration order so far: %s",
		snap.Frontier, traversal.FormatNodes(snap.Visited), current, traversal.FormatNodes(snap.ExplorationOrder))
}

// StateMessage wraps the state of snap as a system chat message.
func StateMessage(snap traversal.Snapshot) Message {
	return Message{Role: RoleSystem, Content: stateDescription(snap)}
}

// stepPrompt asks for an explanation of one step.
func stepPrompt(level string, alg traversal.Algorithm, snap traversal.Snapshot, stepIndex, totalSteps int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert computer science tutor explaining graph algorithms to a %s student.\n", level)
	fmt.Fprintf(&b, "The student is learning the %s algorithm and is currently at step %d of %d.\n\n", alg, stepIndex+1, totalSteps)
	b.WriteString(stateDescription(snap))
	if len(snap.Added) > 0 {
		fmt.Fprintf(&b, "\n- Nodes added to the %s in this step: %s", snap.Frontier.Kind(), traversal.FormatNodes(snap.Added))
	}
	b.WriteString("\n\nPlease provide a clear, step-by-step explanation of what is happening at this point in the algorithm.\n")
	b.WriteString("Explain the current step, why it's important, and how it relates to the overall algorithm.\n")
	b.WriteString("Use an educational tone and include any relevant theoretical concepts.\n")
	b.WriteString("Keep your explanation concise (150-200 words).")

	return b.String()
}

// chatSystemPrompt frames a conversation about alg.
func chatSystemPrompt(level string, alg traversal.Algorithm) string {
	return fmt.Sprintf("You are an expert computer science tutor specializing in graph algorithms, particularly %s.\n"+
		"You're currently helping a %s student understand how %s works and answering their questions.\n"+
		"Keep your explanations clear, educational, and concise (around 150 words).\n"+
		"Use analogies and examples when helpful.", alg, level, alg)
}
