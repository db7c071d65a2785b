// Package prompt builds the instruction text sent to the AI provider.
// Everything here is deterministic: same transcript and kind always
// produce the same prompt.
package prompt

import (
	"fmt"
	"strings"

	"github.com/felipe-jimenez-ai/mentoria/models"
)

var instructions = map[models.MaterialKind]string{
	models.KindSummary: `Please provide a clear and well-structured summary of the following transcript.

FORMATTING INSTRUCTIONS:
1. Begin with an introductory paragraph summarizing the main topic.
2. Use short paragraphs of 2-3 sentences each, separated by blank lines.
3. Do not use bullet points or numbered lists.
4. Use complete sentences and proper punctuation.`,

	models.KindKeyPoints: `Extract the 5 most important key points from this transcript.
Required format (use exactly this format):

• [First key point. Write a complete sentence that summarizes this point.]

• [Second key point. Be clear and concise, but make sure it is a complete sentence.]

• [And so on for all 5 points.]

Make sure each point is on its own line, starts with a bullet (•), and is
separated from the next by a blank line.`,

	models.KindQuestions: `Generate 5 important practice questions and their answers based on this transcript.
IMPORTANT: Follow EXACTLY this format:

Question 1: [first question ending with a question mark]
Answer: [answer to the first question]

Question 2: [second question ending with a question mark]
Answer: [answer to the second question]

Continue through Question 5. Do not include any other text outside this
format, and keep exactly one blank line between each question-answer pair.`,
}

var combineInstructions = map[models.MaterialKind]string{
	models.KindSummary:   "Combine the following summaries into one coherent summary. Keep only the most important information:",
	models.KindKeyPoints: "Combine the following key points. Remove duplicates and keep only the 5 most important ones:",
	models.KindQuestions: "Combine the following questions and answers. Remove duplicates and keep only the 5 most important ones:",
}

// Build produces the full prompt for one transcript (or transcript chunk)
// and material kind. Empty transcript text fails with ErrEmptyTranscript,
// unknown kinds with ErrInvalidKind.
func Build(transcriptText string, kind models.MaterialKind) (string, error) {
	if strings.TrimSpace(transcriptText) == "" {
		return "", models.ErrEmptyTranscript
	}

	instruction, ok := instructions[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidKind, kind)
	}

	return instruction + "\n\nTranscript:\n" + transcriptText, nil
}

// BuildCombine produces the prompt that merges per-chunk results into a
// single piece of study material.
func BuildCombine(kind models.MaterialKind, parts []string) (string, error) {
	if len(parts) == 0 {
		return "", models.ErrEmptyTranscript
	}

	instruction, ok := combineInstructions[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidKind, kind)
	}

	return instruction + "\n\n" + strings.Join(parts, "\n\n"), nil
}
