package generator

import "auto_x_tweet_publisher/note"

// Draft is the model's paraphrase of a note. It has not been validated or
// trimmed for posting yet; that is the formatting stage's job.
type Draft struct {
	Body   string
	Source note.RawNote
}
