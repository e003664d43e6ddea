package catalog

import "github.com/arturybak/google-coding-challenge/internal/domain/video"

// Builtin returns the demo library the player ships with, used when no
// library file is configured.
func Builtin() *Library {
	return New([]*video.Video{
		video.New("funny_dogs_video_id", "Funny Dogs", "#dog", "#animal"),
		video.New("amazing_cats_video_id", "Amazing Cats", "#cat", "#animal"),
		video.New("another_cat_video_id", "Another Cat Video", "#cat", "#animal"),
		video.New("life_at_google_video_id", "Life at Google", "#google", "#career"),
		video.New("nothing_video_id", "Video about nothing"),
	})
}
