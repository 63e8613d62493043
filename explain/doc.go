// Package explain turns traversal snapshots into natural-language
// explanations and answers learner questions, through an external
// text-generation provider when one is configured.
//
// Components:
//
//   - Gateway: the provider capability (ExplainStep, Chat). Implementations:
//     OpenAI (chat-completions JSON over HTTP), Gemini (generateContent JSON
//     over HTTP) and Unconfigured (always ErrGatewayUnavailable).
//   - New(provider, cfg): runtime provider selection by name.
//   - Tutor: wraps a Gateway with the fallback contract. One attempt,
//     bounded by a timeout; any error or empty reply yields local text
//     (DefaultExplanation, DefaultChatResponse), a slog record and an
//     OpenTelemetry span with error status. Tutor methods never fail.
//
// Prompts carry the algorithm state (frontier, visited, current node,
// exploration order). Chat history is truncated to the last MaxHistory
// messages before it is sent.
package explain
