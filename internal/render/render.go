// Package render turns an ordered block list into one static HTML document.
//
// Each block selects a fixed fragment by template id and fills its
// {{placeholder}} tokens from the block config. Substituted values are
// HTML-escaped; the few fields that carry markup go through Markdown and
// an allow-list sanitiser instead. Placeholders without a config value are
// left untouched.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// ErrUnrenderableValue is returned when a config value cannot be turned into text.
var ErrUnrenderableValue = errors.New("config value cannot be rendered")

// Block is one content unit of a page.
type Block struct {
	ID         string         `json:"id" binding:"required"`
	TemplateID string         `json:"templateId" binding:"required"`
	Config     map[string]any `json:"config" binding:"required"`
}

// DecodeBlocks parses a stored JSON block array.
func DecodeBlocks(raw []byte) ([]Block, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []Block{}, nil
	}
	var blocks []Block
	if err := json.Unmarshal(trimmed, &blocks); err != nil {
		return nil, fmt.Errorf("decode blocks: %w", err)
	}
	return blocks, nil
}

// Renderer is safe for concurrent use.
type Renderer struct {
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

// New returns a Renderer with the markup pipeline configured.
func New() *Renderer {
	return &Renderer{
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
			goldmark.WithRendererOptions(gmhtml.WithHardWraps(), gmhtml.WithXHTML(), gmhtml.WithUnsafe()),
		),
		policy: markupPolicy(),
	}
}

// Render renders every block in order and wraps the result in the page shell.
// Any block that fails aborts the whole document.
func (r *Renderer) Render(blocks []Block) (string, error) {
	var body strings.Builder
	for i, block := range blocks {
		fragment, err := r.RenderBlock(block)
		if err != nil {
			return "", fmt.Errorf("render block %d (%s): %w", i, block.TemplateID, err)
		}
		body.WriteString(fragment)
	}
	return documentHead + body.String() + documentTail, nil
}

// RenderBlock renders one block's fragment without the document shell.
func (r *Renderer) RenderBlock(block Block) (string, error) {
	if block.TemplateID == HeroImageTemplateID {
		return renderHeroImage(block.Config)
	}

	templateID := block.TemplateID
	fragment, ok := fragments[templateID]
	if !ok {
		templateID = DefaultTemplateID
		fragment = fragments[templateID]
	}
	raw := rawFields[templateID]
	css := cssFields[templateID]

	keys := make([]string, 0, len(block.Config))
	for key := range block.Config {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, key := range keys {
		value, err := stringify(block.Config[key])
		if err != nil {
			return "", fmt.Errorf("field %q: %w", key, err)
		}
		if clean, ok := css[key]; ok {
			value = clean(value)
		}
		if raw[key] {
			value, err = r.markup(value)
			if err != nil {
				return "", fmt.Errorf("field %q: %w", key, err)
			}
		} else {
			value = html.EscapeString(value)
		}
		pairs = append(pairs, placeholder(key), value)
	}

	if len(pairs) == 0 {
		return fragment, nil
	}
	return strings.NewReplacer(pairs...).Replace(fragment), nil
}

func (r *Renderer) markup(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(embedVideos(source)), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(r.policy.Sanitize(buf.String())), nil
}

func placeholder(key string) string {
	return "{{" + key + "}}"
}

func stringify(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case json.Number:
		return v.String(), nil
	case int, int32, int64, uint, uint32, uint64, float32:
		return fmt.Sprint(v), nil
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnrenderableValue, err)
		}
		return string(encoded), nil
	}
}
