package kickoff

import "fmt"

// buildPrompt assembles the single large kickoff instruction. The model is
// told to answer with nothing but the JSON envelope; parseEnvelope still
// tolerates surrounding prose because models routinely ignore that rule.
func buildPrompt(title, description string) string {
	return fmt.Sprintf(`You are CodeMentor AI. I just started a new project: "%s".
Description: %s

Please perform a PROJECT KICKOFF.
I need you to generate:
1. MVP Scope (Must-have vs Nice-to-have)
2. 2 User Personas
3. Key User Stories
4. Suggested App Screens
5. System Architecture Overview
6. Database Schema Draft
7. API Endpoints List
8. A list of 12 actionable tasks for the Kanban backlog.

FORMATTING:
Return your response as a JSON object with the following structure:
{
  "artifacts": [
    {"type": "requirements", "title": "MVP Scope & Requirements", "content": "markdown content..."},
    {"type": "architecture", "title": "System Architecture", "content": "markdown content..."},
    {"type": "db", "title": "Database Schema", "content": "markdown content..."},
    {"type": "api", "title": "API Specification", "content": "markdown content..."},
    {"type": "ui", "title": "UI Screen Plan", "content": "markdown content..."}
  ],
  "tasks": [
    {"title": "Task title", "priority": "High/Medium/Low"},
    ... (at least 12)
  ],
  "welcomeMessage": "A friendly greeting summarizing what you've created."
}

DO NOT include any text before or after the JSON. Only return the JSON.`, title, description)
}
