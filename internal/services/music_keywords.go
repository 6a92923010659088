package services

import (
	"sort"
	"strings"
)

const maxMusicKeywords = 5

// LikedTrack is the feedback shape the keyword ranking consumes; Tags is a
// comma-separated list as delivered by the audio search provider.
type LikedTrack struct {
	Tags string `json:"tags"`
}

var defaultSleepKeywords = []string{"sleep", "calm", "relax", "ambient", "meditation"}

// SleepMusicKeywords ranks the tags of liked tracks by frequency and returns
// up to five, falling back to a default relaxation set when the user has no
// usable likes yet. Ties break alphabetically so the result is stable.
func SleepMusicKeywords(liked []LikedTrack) []string {
	counts := make(map[string]int)
	for _, track := range liked {
		for _, raw := range strings.Split(track.Tags, ",") {
			tag := strings.ToLower(strings.TrimSpace(raw))
			if tag == "" {
				continue
			}
			counts[tag]++
		}
	}

	if len(counts) == 0 {
		keywords := make([]string, len(defaultSleepKeywords))
		copy(keywords, defaultSleepKeywords)
		return keywords
	}

	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})

	if len(tags) > maxMusicKeywords {
		tags = tags[:maxMusicKeywords]
	}
	return tags
}
