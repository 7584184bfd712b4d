package generator

import (
	"fmt"
	"strings"

	"auto_x_tweet_publisher/note"
)

// Prompt is the message pair sent to the LLM.
type Prompt struct {
	System string
	User   string
}

// BuildTweetPrompt assembles the instructions for paraphrasing a note into a
// single tweet.
func BuildTweetPrompt(n note.RawNote) Prompt {
	var sb strings.Builder
	sb.WriteString("You turn raw learning notes into one engaging tweet, written in a learning-in-public voice.\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("- Keep \"Day X\" or \"Day <number>\" exactly as it is, if present.\n")
	sb.WriteString("- Structure the tweet into 2-3 short lines with a blank line between sections.\n")
	sb.WriteString("- Add 1-2 relevant emojis naturally.\n")
	sb.WriteString("- The tone should be clear, motivating, and slightly cool. Not too formal, not too casual.\n")
	sb.WriteString("- Use simple, easy-to-understand English and avoid fancy words.\n")
	sb.WriteString("- Include 1-3 relevant hashtags on the last line.\n")
	sb.WriteString("- STRICTLY limit the tweet to a maximum of 280 characters.\n")
	sb.WriteString("- Return ONLY one version as plain text. No explanations, no options, no markdown.\n")

	user := fmt.Sprintf("Text:\n%s", n.Text)

	return Prompt{System: sb.String(), User: user}
}

// BuildLinkedInPrompt assembles the instructions for the long-form companion
// post. The result is only previewed, never published by this tool.
func BuildLinkedInPrompt(n note.RawNote) Prompt {
	var sb strings.Builder
	sb.WriteString("You turn raw learning notes into an engaging LinkedIn post, written in a learning-in-public voice.\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("- Keep \"Day X\" or \"Day <number>\" exactly as it is, if present.\n")
	sb.WriteString("- Start with a strong hook in the first 200 characters, before the fold.\n")
	sb.WriteString("- Structure the post into short paragraphs with blank lines between them.\n")
	sb.WriteString("- The tone should be professional but authentic, in simple English.\n")
	sb.WriteString("- Use 0-2 emojis at most.\n")
	sb.WriteString("- End with 3-5 relevant hashtags.\n")
	sb.WriteString("- STRICTLY limit the post to a maximum of 3000 characters.\n")
	sb.WriteString("- Return ONLY the post as plain text. No explanations, no options, no markdown.\n")

	user := fmt.Sprintf("Text:\n%s", n.Text)

	return Prompt{System: sb.String(), User: user}
}
