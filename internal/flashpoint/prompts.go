package flashpoint

import (
	"encoding/json"
	"fmt"
	"strings"
)

const flashpointPromptTemplate = `
You are an expert analyst.
Here is a list of potential 'Flashpoints' with their IDs and titles:
%s

Below is a conversation history between a User and an Assistant:
%s

Task:
Identify the top 3 most likely Flashpoints that the User is facing based on the conversation.
For each shortlisted Flashpoint, provide:
1. The Flashpoint ID (srno).
2. The Title.
3. A Likelihood Score (1 to 5, where 5 is highest).
4. A brief explanation for the score.

Output Format (JSON):
[
  {
    "srno": "FPx",
    "title": "...",
    "zone": "...",
    "score": 5,
    "explanation": "..."
  },
  ...
]
Return ONLY the JSON array.
`

const zonePromptTemplate = `
You are an expert analyst.
The available 'Process Zones' are:
%s

Below is a conversation history between a User and an Assistant:
%s

Task:
Determine which Process Zone the User is most likely talking about or currently in.
Provide:
1. The Process Zone Name.
2. A Likelihood Score (1 to 5).
3. A brief explanation.

Output Format (JSON):
[
  {
    "zone": "...",
    "score": 5,
    "explanation": "..."
  }
]
Return ONLY the JSON array.
`

const replyPromptTemplate = `
You are an expert analyst and investigator.
Your goal is to identify which specific 'Flashpoint' (problem scenario) the user is facing.

%s

Current Shortlisted/Potential Flashpoints:
%s

Instructions:
1. Analyze the user's input and the conversation history.
2. If the user's situation is unclear or could match multiple flashpoints, ask a single, specific clarifying question to narrow it down.
3. Do NOT provide solutions, advice, or recommendations. Your ONLY job is to identify the problem.
4. Do NOT list the flashpoints to the user in chat message.
5. DO NOT tell user what are the identified Flashpoints
6. Keep your responses concise and professional.
7. Once Flashpoint identification is done, just say Thank you - we shall provide solution in upcoming version. DO NOT TELL WHICH FLASHPOINT IS IDENTIFIED

Conversation History:
%s

Assistant:
`

// FlashpointPrompt embeds the full dataset and the conversation so far.
// Conversation text passes through verbatim; it is inert data to the model.
func FlashpointPrompt(history string, data []Record) string {
	ctx, _ := json.MarshalIndent(data, "", "  ")
	return fmt.Sprintf(flashpointPromptTemplate, ctx, history)
}

// ZonePrompt embeds the deduplicated set of zone names. Set order is
// arbitrary.
func ZonePrompt(history string, data []Record) string {
	zones, _ := json.MarshalIndent(uniqueZones(data), "", "  ")
	return fmt.Sprintf(zonePromptTemplate, zones, history)
}

func uniqueZones(data []Record) []string {
	seen := make(map[string]struct{}, len(data))
	zones := make([]string, 0, len(data))
	for _, rec := range data {
		if rec.Zone == "" {
			continue
		}
		if _, ok := seen[rec.Zone]; ok {
			continue
		}
		seen[rec.Zone] = struct{}{}
		zones = append(zones, rec.Zone)
	}
	return zones
}

// ReplyPrompt builds the assistant-reply prompt. Context priority: the
// current shortlist if one exists, else the full title list, else a no-data
// notice. The shortlist itself is never shown to the user, only to the model.
func ReplyPrompt(history string, shortlist []ShortlistEntry, data []Record) string {
	var (
		instruction string
		contextJSON string
	)

	switch {
	case len(shortlist) > 0:
		b, _ := json.MarshalIndent(shortlist, "", "  ")
		contextJSON = string(b)
		instruction = "Based on the analysis, the user is likely facing one of the following Flashpoints. Use this list to ask specific clarifying questions."
	case len(data) > 0:
		titles := make([]string, 0, len(data))
		for _, rec := range data {
			if rec.Title != "" {
				titles = append(titles, rec.Title)
			}
		}
		b, _ := json.MarshalIndent(titles, "", "  ")
		contextJSON = string(b)
		instruction = "Analyze the conversation against the full list of Flashpoints below."
	default:
		contextJSON = "No flashpoint data available."
	}

	return fmt.Sprintf(replyPromptTemplate, instruction, contextJSON, history)
}

// HistoryText serializes the transcript as "role: content" lines.
func HistoryText(turns []Turn) string {
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		lines = append(lines, fmt.Sprintf("%s: %s", t.Role, t.Content))
	}
	return strings.Join(lines, "\n")
}
