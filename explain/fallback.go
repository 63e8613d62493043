package explain

import (
	"fmt"

	"github.com/katalvlaran/graphtutor/traversal"
)

const genericStepText = "This step shows the progression of the algorithm. " +
	"Notice how nodes are visited in a specific order based on the algorithm's traversal strategy."

// DefaultExplanation is the local explanation of snap: its description plus
// a short note on the algorithm's exploration strategy.
func DefaultExplanation(alg traversal.Algorithm, snap traversal.Snapshot) string {
	if snap.Description == "" {
		return genericStepText
	}

	strategy := "broadly (by exploring all neighbors before moving to the next level)"
	if alg == traversal.DFS {
		strategy = "deeply (by going as far as possible along a branch before backtracking)"
	}

	return fmt.Sprintf("%s\n\nIn %s, we explore the graph %s. This is why we use a %s data structure to keep track of nodes to visit next.",
		snap.Description, alg, strategy, alg.FrontierKind())
}

// DefaultChatResponse is the local reply used when no provider answers.
func DefaultChatResponse(alg traversal.Algorithm) string {
	return fmt.Sprintf("I'm currently operating without an explanation provider. "+
		"Please check the provider configuration (OPENAI_API_KEY or GEMINI_API_KEY) to enable full conversational capabilities.\n\n"+
		"For questions about %s, I recommend reading the algorithm description and watching the visualization step by step.", alg)
}
