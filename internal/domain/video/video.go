// Package video provides the Video domain entity.
package video

import (
	"fmt"
	"strings"
)

// Video represents a single entry in the video library.
// Identity and tags never change after loading; the moderation flag is the
// only mutable field and is owned by the player's flag/allow operations.
type Video struct {
	ID    string   // Library-wide unique video ID
	Title string   // Display title
	Tags  []string // Tags as stored in the library (e.g. "#cat")

	flag *string // Moderation reason; nil while the video is not flagged
}

// New returns an unflagged video with the given identity and tags.
func New(id, title string, tags ...string) *Video {
	return &Video{ID: id, Title: title, Tags: tags}
}

// Flagged reports whether the video carries a moderation flag.
func (v *Video) Flagged() bool {
	return v.flag != nil
}

// FlagReason returns the moderation reason, or "" while unflagged.
func (v *Video) FlagReason() string {
	if v.flag == nil {
		return ""
	}
	return *v.flag
}

// SetFlag marks the video with the given moderation reason.
func (v *Video) SetFlag(reason string) {
	v.flag = &reason
}

// ClearFlag removes the moderation flag.
func (v *Video) ClearFlag() {
	v.flag = nil
}

// HasTag checks if the video carries the given tag, ignoring case.
func (v *Video) HasTag(tag string) bool {
	for _, t := range v.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// String renders the video the way all listings show it:
// "Title (video_id) [tag1 tag2]", with the flag reason appended when flagged.
func (v *Video) String() string {
	s := fmt.Sprintf("%s (%s) [%s]", v.Title, v.ID, strings.Join(v.Tags, " "))
	if v.flag != nil {
		s += fmt.Sprintf(" - FLAGGED (reason: %s)", *v.flag)
	}
	return s
}
