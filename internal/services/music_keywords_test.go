package services

import (
	"reflect"
	"testing"
)

func TestSleepMusicKeywordsRanksByFrequency(t *testing.T) {
	t.Parallel()

	liked := []LikedTrack{
		{Tags: "rain, piano, ambient"},
		{Tags: "Rain, ocean"},
		{Tags: "rain,piano"},
	}

	keywords := SleepMusicKeywords(liked)
	if !reflect.DeepEqual(keywords, []string{"rain", "piano", "ambient", "ocean"}) {
		t.Fatalf("unexpected keywords: %v", keywords)
	}
}

func TestSleepMusicKeywordsCapsAtFive(t *testing.T) {
	t.Parallel()

	liked := []LikedTrack{
		{Tags: "a,b,c,d,e,f,g"},
	}

	keywords := SleepMusicKeywords(liked)
	if len(keywords) != 5 {
		t.Fatalf("expected at most 5 keywords, got %d", len(keywords))
	}
}

func TestSleepMusicKeywordsFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	keywords := SleepMusicKeywords([]LikedTrack{{Tags: " , "}})
	if !reflect.DeepEqual(keywords, []string{"sleep", "calm", "relax", "ambient", "meditation"}) {
		t.Fatalf("expected default relaxation set, got %v", keywords)
	}
}
