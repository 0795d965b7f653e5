package render

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	videoLinePattern = regexp.MustCompile(`^<?(https?://[^\s<>]+)>?$`)
	videoIDPattern   = regexp.MustCompile(`^[A-Za-z0-9_-]{6,}$`)
	videoTimePattern = regexp.MustCompile(`(?i)(\d+)(h|m|s)`)
	embedSrcPattern  = regexp.MustCompile(`^https://(?:www\.youtube-nocookie\.com/embed/|player\.vimeo\.com/video/)`)
)

// videoEmbed 是一个可嵌入的视频播放器地址。
type videoEmbed struct {
	Provider string
	EmbedURL string
}

// markupPolicy 在 UGC 白名单基础上放行视频播放器 iframe。
func markupPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("iframe")
	policy.AllowAttrs("class", "data-video-provider").OnElements("div")
	policy.AllowAttrs("class", "title", "loading", "allow", "allowfullscreen", "frameborder", "referrerpolicy").OnElements("iframe")
	policy.AllowAttrs("src").Matching(embedSrcPattern).OnElements("iframe")
	return policy
}

// embedVideos 把独占一行的 YouTube 或 Vimeo 链接替换为播放器，代码块内的内容保持原样。
func embedVideos(markdown string) string {
	if !strings.Contains(markdown, "http") {
		return markdown
	}

	lines := strings.Split(markdown, "\n")
	fence := ""
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if marker := fenceMarker(trimmed); marker != "" {
			switch {
			case fence == "":
				fence = marker
			case strings.HasPrefix(trimmed, fence):
				fence = ""
			}
			continue
		}
		if fence != "" || strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
			continue
		}

		match := videoLinePattern.FindStringSubmatch(trimmed)
		if match == nil {
			continue
		}
		embed, ok := parseVideoURL(match[1])
		if !ok {
			continue
		}
		// 前后空行让 Markdown 把播放器当作独立的 HTML 块
		lines[i] = "\n" + embed.html() + "\n"
	}
	return strings.Join(lines, "\n")
}

func fenceMarker(line string) string {
	switch {
	case strings.HasPrefix(line, "```"):
		return "```"
	case strings.HasPrefix(line, "~~~"):
		return "~~~"
	}
	return ""
}

func parseVideoURL(raw string) (videoEmbed, bool) {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return videoEmbed{}, false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	path := strings.Trim(u.Path, "/")

	switch host {
	case "youtu.be":
		return youtubeEmbed(firstSegment(path), u)
	case "youtube.com", "m.youtube.com":
		if path == "watch" {
			return youtubeEmbed(u.Query().Get("v"), u)
		}
		for _, prefix := range []string{"shorts/", "embed/", "live/"} {
			if strings.HasPrefix(path, prefix) {
				return youtubeEmbed(firstSegment(strings.TrimPrefix(path, prefix)), u)
			}
		}
	case "vimeo.com":
		id := firstSegment(path)
		if _, err := strconv.ParseUint(id, 10, 64); err == nil {
			return videoEmbed{Provider: "vimeo", EmbedURL: "https://player.vimeo.com/video/" + id}, true
		}
	}
	return videoEmbed{}, false
}

func youtubeEmbed(id string, source *url.URL) (videoEmbed, bool) {
	if !videoIDPattern.MatchString(id) {
		return videoEmbed{}, false
	}

	params := url.Values{}
	params.Set("rel", "0")
	if start := youtubeStart(source.Query()); start > 0 {
		params.Set("start", strconv.Itoa(start))
	}
	return videoEmbed{
		Provider: "youtube",
		EmbedURL: "https://www.youtube-nocookie.com/embed/" + id + "?" + params.Encode(),
	}, true
}

// youtubeStart 解析 t=90、t=1m30s 或 start=90 形式的起始秒数。
func youtubeStart(query url.Values) int {
	value := query.Get("start")
	if value == "" {
		value = query.Get("t")
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return max(seconds, 0)
	}

	total := 0
	for _, match := range videoTimePattern.FindAllStringSubmatch(value, -1) {
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		switch strings.ToLower(match[2]) {
		case "h":
			total += n * 3600
		case "m":
			total += n * 60
		case "s":
			total += n
		}
	}
	return total
}

func firstSegment(path string) string {
	segment, _, _ := strings.Cut(path, "/")
	return segment
}

func (e videoEmbed) html() string {
	return fmt.Sprintf(
		`<div class="aspect-video w-full overflow-hidden rounded-lg" data-video-provider="%s">`+
			`<iframe class="w-full h-full" src="%s" title="%s video" loading="lazy" allow="accelerometer; encrypted-media; gyroscope; picture-in-picture" allowfullscreen frameborder="0" referrerpolicy="strict-origin-when-cross-origin"></iframe>`+
			`</div>`,
		html.EscapeString(e.Provider),
		html.EscapeString(e.EmbedURL),
		html.EscapeString(e.Provider),
	)
}
