package ai

import "fmt"

const promptTemplate = `
You are an intelligent assistant for scheduling appointment conversations for a window washing company.
Extract the intent of the following message regarding an appointment and return a JSON object with exactly these keys:
- "action": one of "book", "cancel", "reschedule", or "unknown"
- "name": customer's name if mentioned (otherwise leave it blank)
- "date": appointment date in YYYY-MM-DD format if mentioned
- "time": appointment time in HH:MM format if mentioned
- "new_date": for reschedule cases, the new date if mentioned
- "new_time": for reschedule cases, the new time if mentioned

User message: %q

Return only the JSON object.
`

// BuildPrompt embeds the user's message in the fixed extraction instructions.
func BuildPrompt(message string) string {
	return fmt.Sprintf(promptTemplate, message)
}
