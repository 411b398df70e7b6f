// ABOUTME: Canned keyword-heuristic companion responder. No AI, no network.
// ABOUTME: A pure function of the message; the store is never touched.
package chat

import "strings"

// Reply picks the companion's canned response for a message. Matching is a
// simple keyword scan, first hit wins.
func Reply(message string) string {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, "good", "great", "happy"):
		return "That matches my mood! Keep changing the world!"
	case containsAny(lower, "bad", "sad", "tired"):
		return "I'm sorry to hear that. Remember, small steps are still progress. Take a deep breath."
	case containsAny(lower, "hello", "hi"):
		return "Hi there! Ready to crush some habits today?"
	default:
		return "I'm always here to support you!"
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
