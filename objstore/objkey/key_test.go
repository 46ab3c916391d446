package objkey

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	type test struct {
		name     string
		input    string
		expected string
	}

	tests := []*test{
		{name: "Simple", input: "cat.jpg", expected: "cat-jpg"},
		{name: "Spaces", input: "my cool photo", expected: "my-cool-photo"},
		{name: "MixedCase", input: "Vacation Video.MP4", expected: "vacation-video-mp4"},
		{name: "LeadingTrailingPunctuation", input: "--weird--", expected: "weird"},
		{name: "Empty", input: "", expected: "media"},
		{name: "OnlyPunctuation", input: "...", expected: "media"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, Slug(test.input))
		})
	}
}

func TestBuild(t *testing.T) {
	key := Build("b1", "m1", "cat.jpg")
	require.Equal(t, "b1/m1/cat-jpg", key)
}

func TestDirectory(t *testing.T) {
	require.Equal(t, "b1/m1/", Directory("b1", "m1"))
}
