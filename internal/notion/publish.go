// Package notion publishes converted notes as pages of a Notion database.
package notion

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/nguyentantai21042004/voice-notes/internal/errs"
)

// maxChildren is the most blocks Notion accepts in one request.
const maxChildren = 100

type pageResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func (p *implPublisher) Publish(ctx context.Context, page Page) (*Result, error) {
	if strings.TrimSpace(page.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", errs.ErrPublish)
	}
	if len(page.Blocks) == 0 {
		return nil, fmt.Errorf("%w: content cannot be empty", errs.ErrPublish)
	}
	if p.opts.DatabaseID == "" {
		return nil, fmt.Errorf("%w: database id not configured", errs.ErrPublish)
	}

	p.logger.Info(ctx, "Adding '%s' to Notion...", page.Title)

	children := toBlocks(page.Blocks)
	first := children[:min(len(children), maxChildren)]

	payload := map[string]any{
		"parent": map[string]string{"database_id": p.opts.DatabaseID},
		"properties": map[string]any{
			p.opts.TitleProperty: map[string]any{
				"title": []richText{{Type: "text", Text: textContent{Content: page.Title}}},
			},
			p.opts.DateProperty: map[string]any{
				"date": map[string]string{"start": page.Date.Format("2006-01-02")},
			},
		},
		"children": first,
	}

	var created pageResponse
	if err := p.do(ctx, http.MethodPost, "/pages", payload, &created); err != nil {
		return nil, fmt.Errorf("%w: create page: %w", errs.ErrPublish, err)
	}

	for start := len(first); start < len(children); start += maxChildren {
		batch := children[start:min(start+maxChildren, len(children))]
		err := p.do(ctx, http.MethodPatch, "/blocks/"+created.ID+"/children", map[string]any{"children": batch}, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: append blocks %d-%d to page %s: %w",
				errs.ErrPublish, start, start+len(batch)-1, created.ID, err)
		}
	}

	p.logger.Info(ctx, "Successfully added to Notion: %s", created.URL)
	return &Result{PageID: created.ID, URL: created.URL}, nil
}
