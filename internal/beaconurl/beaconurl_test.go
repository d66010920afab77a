package beaconurl

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct {
		name          string
		series        string
		episodeNumber string
		title         string
		want          string
	}{
		{
			name:          "campaign three cooldown",
			series:        "Critical Role Cooldown",
			episodeNumber: "C3x83",
			title:         "C3E83 Cooldown",
			want:          "https://beacon.tv/content/3-83-cr-cooldown-c3-e83",
		},
		{
			name:          "campaign four cooldown zero padded",
			series:        "Critical Role Cooldown",
			episodeNumber: "C4x1",
			title:         "C4E1 Cooldown",
			want:          "https://beacon.tv/content/cr-cooldown-c4-e001",
		},
		{
			name:          "age of umbra",
			series:        "Age of Umbra",
			episodeNumber: "1",
			title:         "Age of Umbra Cooldown Episode 1",
			want:          "https://beacon.tv/content/age-of-umbra-cooldown-e1",
		},
		{
			name:          "wildemount wildlings spelling quirk",
			series:        "Wildemount Wildlings",
			episodeNumber: "1",
			title:         "Wildemount Wildlings Cooldown",
			want:          "https://beacon.tv/content/wildemount-wildings-cooldown-e1",
		},
		{
			name:          "thresher",
			series:        "Thresher",
			episodeNumber: "2",
			title:         "Thresher Cooldown Episode 2",
			want:          "https://beacon.tv/content/thresher-cooldown-e2",
		},
		{
			name:          "exu divergence",
			series:        "Critical Role Cooldown",
			episodeNumber: "E4x2",
			title:         "Divergence Cooldown Part 2",
			want:          "https://beacon.tv/content/exu-cooldown-divergence-e2",
		},
		{
			name:          "inside mighty nein range",
			series:        "Inside The Mighty Nein",
			episodeNumber: "1-5",
			title:         "Inside The Mighty Nein Episodes 1-5",
			want:          "https://beacon.tv/content/inside-the-mighty-nein-episodes-1-5",
		},
		{
			name:          "special slugged from title",
			series:        "Critical Role Cooldown",
			episodeNumber: "Special",
			title:         "Cooldown: Solstice Celebration",
			want:          "https://beacon.tv/content/cr-cooldown-solstice-celebration",
		},
		{
			name:          "wedding special",
			series:        "Critical Role Cooldown",
			episodeNumber: "C2x141",
			title:         "Jester and Fjord's Wedding Cooldown",
			want:          "https://beacon.tv/content/cr-cooldown-jester-and-fjords-wedding-live-from-radio-city-music-hall",
		},
		{
			name:          "generic series pattern",
			series:        "Candela Obscura",
			episodeNumber: "3",
			title:         "Candela Obscura Cooldown Episode 3",
			want:          "https://beacon.tv/content/candela-obscura-cooldown-e3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.series, tt.episodeNumber, tt.title); got != tt.want {
				t.Errorf("Generate() = %q, want %q", got, tt.want)
			}
		})
	}
}
