// File: internal/api/relic.go
package api

import (
	"context"
	"fmt"
	"net/url"
)

// RelicVO is a historical site or relic as the platform returns it.
type RelicVO struct {
	ID                uint    `json:"id"`
	Name              string  `json:"name"`
	Location          string  `json:"location"`
	DynastyID         *uint   `json:"dynastyId"`
	DynastyName       *string `json:"dynastyName"`
	RelatedEventID    *uint   `json:"relatedEventId"`
	RelatedEventTitle *string `json:"relatedEventTitle"`
	Description       string  `json:"description"`
	Coordinates       *string `json:"coordinates"`
}

// ListRelics returns all relics.
func (c *Client) ListRelics(ctx context.Context) ([]RelicVO, error) {
	var out []RelicVO
	if err := c.get(ctx, "/relic/list", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRelic returns one relic by id.
func (c *Client) GetRelic(ctx context.Context, id uint) (*RelicVO, error) {
	var out RelicVO
	if err := c.get(ctx, fmt.Sprintf("/relic/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRelicsByDynasty returns the relics attributed to one dynasty.
func (c *Client) GetRelicsByDynasty(ctx context.Context, dynastyID uint) ([]RelicVO, error) {
	var out []RelicVO
	if err := c.get(ctx, fmt.Sprintf("/relic/dynasty/%d", dynastyID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchRelics searches relics by keyword.
func (c *Client) SearchRelics(ctx context.Context, keyword string) ([]RelicVO, error) {
	var out []RelicVO
	if err := c.get(ctx, "/relic/search?keyword="+url.QueryEscape(keyword), &out); err != nil {
		return nil, err
	}
	return out, nil
}
