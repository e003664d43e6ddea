package catalog

import (
	"bufio"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/arturybak/google-coding-challenge/internal/domain/video"
)

// LoadFile reads a library file with one video per line:
//
//	title|video_id|#tag1, #tag2
//
// The tag column may be empty or missing. Blank lines and lines starting
// with # are ignored; malformed lines are skipped with a warning.
func LoadFile(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open library file")
	}
	defer f.Close()

	videos := make([]*video.Video, 0)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		v, ok := parseLine(line)
		if !ok {
			zlog.Warn().Msgf("catalog: skipping malformed line: file=%s line=%d", path, lineNo)
			continue
		}
		videos = append(videos, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read library file")
	}

	zlog.Info().Msgf("catalog: loaded video library: file=%s videos=%d", path, len(videos))
	return New(videos), nil
}

// parseLine parses a "title|video_id|tags" line with comma-separated tags.
func parseLine(line string) (*video.Video, bool) {
	parts := strings.Split(line, "|")
	if len(parts) < 2 {
		return nil, false
	}

	title := strings.TrimSpace(parts[0])
	id := strings.TrimSpace(parts[1])
	if title == "" || id == "" {
		return nil, false
	}

	var tags []string
	if len(parts) > 2 {
		for _, tag := range strings.Split(parts[2], ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return video.New(id, title, tags...), true
}
