package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVideoURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{name: "short link", input: "https://youtu.be/dQw4w9WgXcQ", expected: "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ?rel=0", ok: true},
		{name: "watch with time", input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=1m30s", expected: "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ?rel=0&start=90", ok: true},
		{name: "shorts", input: "https://youtube.com/shorts/abcdefGHIJ", expected: "https://www.youtube-nocookie.com/embed/abcdefGHIJ?rel=0", ok: true},
		{name: "vimeo", input: "https://vimeo.com/76979871", expected: "https://player.vimeo.com/video/76979871", ok: true},
		{name: "vimeo channel", input: "https://vimeo.com/channels/staffpicks", ok: false},
		{name: "other host", input: "https://example.com/watch?v=dQw4w9WgXcQ", ok: false},
		{name: "bad id", input: "https://youtu.be/<x>", ok: false},
		{name: "scheme", input: "ftp://youtu.be/dQw4w9WgXcQ", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embed, ok := parseVideoURL(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, embed.EmbedURL)
			}
		})
	}
}

func TestEmbedVideosSkipsCodeAndInlineLinks(t *testing.T) {
	source := "Intro https://youtu.be/dQw4w9WgXcQ inline\n\n```\nhttps://youtu.be/dQw4w9WgXcQ\n```\n\nhttps://vimeo.com/76979871"
	out := embedVideos(source)

	assert.Contains(t, out, "Intro https://youtu.be/dQw4w9WgXcQ inline")
	assert.Contains(t, out, "```\nhttps://youtu.be/dQw4w9WgXcQ\n```")
	assert.Contains(t, out, `src="https://player.vimeo.com/video/76979871"`)
}

func TestRenderEmbedsVideoInDefaultContent(t *testing.T) {
	out, err := New().RenderBlock(Block{
		ID:         "b1",
		TemplateID: DefaultTemplateID,
		Config:     map[string]any{"content": "Watch this:\n\nhttps://youtu.be/dQw4w9WgXcQ"},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "<iframe")
	assert.Contains(t, out, `src="https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ?rel=0"`)
	assert.Contains(t, out, `data-video-provider="youtube"`)
}

func TestRenderStripsForeignIframeSource(t *testing.T) {
	out, err := New().RenderBlock(Block{
		ID:         "b1",
		TemplateID: DefaultTemplateID,
		Config:     map[string]any{"content": `<iframe src="https://evil.example.com/x"></iframe>`},
	})
	require.NoError(t, err)

	assert.NotContains(t, out, "evil.example.com")
}
