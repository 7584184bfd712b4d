// Package format validates and normalizes model drafts into ready-to-post
// text: markdown artifacts flattened, whitespace collapsed, the day marker
// restored, hashtags ensured and the platform length limit enforced.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"auto_x_tweet_publisher/generator"
)

const (
	// MaxTweetLength is the X post limit, counted in Unicode code points.
	MaxTweetLength = 280
	// MaxLinkedInLength is the LinkedIn post limit for the companion preview.
	MaxLinkedInLength = 3000

	truncationMark = "…"
)

var (
	blankRunRe = regexp.MustCompile(`\n{3,}`)
	// hashtagRe matches a hashtag at the start of a word; a # inside a
	// word (C#9) does not count.
	hashtagRe = regexp.MustCompile(`(^|\s)#\w`)
	// dayMentionRe finds day markers anywhere in the body, any case.
	dayMentionRe = regexp.MustCompile(`(?i)\bday\s+(\d+)\b`)
)

// FormatError reports a draft that cannot be shaped into a postable body.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "cannot format post: " + e.Reason
}

// Post is the final, publishable body plus the mode it should be published in.
type Post struct {
	Body   string
	DryRun bool
}

// Options control a single formatting pass.
type Options struct {
	// Limit is the maximum body length in runes. Zero means MaxTweetLength.
	Limit int
	// Hashtags are appended on their own line when the draft has none.
	Hashtags []string
	// StripMarkdown flattens markdown artifacts the model emitted anyway.
	StripMarkdown bool
	// EnsureDayMarker restores a "Day N:" prefix the paraphrase dropped.
	EnsureDayMarker bool
}

// TweetOptions is the standard pass for the tweet that gets published.
func TweetOptions() Options {
	return Options{
		Limit:           MaxTweetLength,
		Hashtags:        []string{"#LearningInPublic", "#BuildInPublic"},
		StripMarkdown:   true,
		EnsureDayMarker: true,
	}
}

// LinkedInOptions is the pass for the long-form companion preview. Markdown
// is kept as written since the post is pasted manually anyway.
func LinkedInOptions() Options {
	return Options{
		Limit:           MaxLinkedInLength,
		EnsureDayMarker: true,
	}
}

// PostProcess shapes a draft into its final postable form. The pass is
// deterministic and idempotent: running it on its own output changes nothing.
func PostProcess(d generator.Draft, opts Options, dryRun bool) (Post, error) {
	body := d.Body
	if opts.StripMarkdown {
		body = flattenMarkdown(body)
	}
	body = normalize(body)
	if body == "" {
		return Post{}, &FormatError{Reason: "draft contains no usable text"}
	}

	if opts.EnsureDayMarker && d.Source.Day > 0 && !mentionsDay(body, d.Source.Day) {
		body = fmt.Sprintf("Day %d: %s", d.Source.Day, body)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = MaxTweetLength
	}

	// Tag presence is decided before truncation so a draft that brought its
	// own hashtags never gets ours stacked on top.
	tagLine := ""
	if len(opts.Hashtags) > 0 && !hashtagRe.MatchString(body) {
		tagLine = strings.Join(opts.Hashtags, " ")
	}

	budget := limit
	if tagLine != "" {
		budget -= utf8.RuneCountInString(tagLine) + 2
	}
	if budget <= 0 {
		return Post{}, &FormatError{Reason: fmt.Sprintf("hashtags alone exceed the %d character limit", limit)}
	}

	body = truncateAtWord(body, budget)
	if body == "" || body == truncationMark {
		return Post{}, &FormatError{Reason: "no content remains after truncation"}
	}
	if tagLine != "" {
		body = body + "\n\n" + tagLine
	}

	return Post{Body: body, DryRun: dryRun}, nil
}

// normalize unifies line endings, trims trailing space per line and collapses
// runs of blank lines down to a single blank line.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	s = strings.Join(lines, "\n")
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

func mentionsDay(body string, day int) bool {
	for _, m := range dayMentionRe.FindAllStringSubmatch(body, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n == day {
			return true
		}
	}
	return false
}

// truncateAtWord cuts s down to at most budget runes, backing up to the last
// word boundary and ending in a truncation mark. Strings within budget pass
// through untouched.
func truncateAtWord(s string, budget int) string {
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	cut := runes[:budget-1]
	last := -1
	for i, r := range cut {
		if unicode.IsSpace(r) {
			last = i
		}
	}
	if last > 0 {
		cut = cut[:last]
	}
	trimmed := strings.TrimRightFunc(string(cut), unicode.IsSpace)
	return trimmed + truncationMark
}
