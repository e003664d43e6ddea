package player

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/arturybak/google-coding-challenge/internal/domain/video"
)

// SearchVideos lists the unflagged videos whose title contains the term,
// ignoring case, and offers to play one of them.
func (p *Player) SearchVideos(term string) {
	matches := make([]*video.Video, 0)
	for _, v := range p.library.Unflagged() {
		if strings.Contains(strings.ToLower(v.Title), strings.ToLower(term)) {
			matches = append(matches, v)
		}
	}
	p.offerResults(term, matches)
}

// SearchVideosWithTag lists the unflagged videos carrying exactly the given
// tag, ignoring case, and offers to play one of them.
func (p *Player) SearchVideosWithTag(tag string) {
	matches := make([]*video.Video, 0)
	for _, v := range p.library.Unflagged() {
		if v.HasTag(tag) {
			matches = append(matches, v)
		}
	}
	p.offerResults(tag, matches)
}

// offerResults numbers the matches sorted by title, reads one selection
// answer and plays the chosen video. Anything but an in-range number,
// including a failed read, means no.
func (p *Player) offerResults(query string, matches []*video.Video) {
	if len(matches) == 0 {
		p.console.WriteLine(fmt.Sprintf("No search results for %s", query))
		return
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Title < matches[j].Title })

	p.console.WriteLine(fmt.Sprintf("Here are the results for %s:", query))
	for i, v := range matches {
		p.console.WriteLine(fmt.Sprintf("%d) %s", i+1, v))
	}
	p.console.WriteLine("Would you like to play any of the above? If yes, specify the number of the video.")
	p.console.WriteLine("If your answer is not a valid number, we will assume it's a no.")

	answer, err := p.console.ReadLine()
	if err != nil {
		return
	}
	n, ok := parseSelection(answer, len(matches))
	if !ok {
		return
	}
	p.PlayVideo(matches[n-1].ID)
}

// parseSelection interprets a selection answer. Only a line of plain digits
// naming a result between 1 and max counts as a selection.
func parseSelection(answer string, max int) (int, bool) {
	if answer == "" {
		return 0, false
	}
	for _, r := range answer {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > max {
		return 0, false
	}
	return n, true
}
