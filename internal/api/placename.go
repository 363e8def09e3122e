// File: internal/api/placename.go
package api

import (
	"context"
	"fmt"
	"net/url"
)

// PlaceNameVO maps an ancient place name to its modern location.
type PlaceNameVO struct {
	ID             uint   `json:"id"`
	AncientName    string `json:"ancientName"`
	ModernName     string `json:"modernName"`
	ModernLocation string `json:"modernLocation"`
	Description    string `json:"description"`
}

// PageResult is the platform's paginated list envelope.
type PageResult[T any] struct {
	List       []T   `json:"list"`
	Total      int64 `json:"total"`
	PageNum    int   `json:"pageNum"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// ListPlaceNames returns all place-name mappings.
func (c *Client) ListPlaceNames(ctx context.Context) ([]PlaceNameVO, error) {
	var out []PlaceNameVO
	if err := c.get(ctx, "/place-name/list", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPlaceName returns one place-name mapping by id.
func (c *Client) GetPlaceName(ctx context.Context, id uint) (*PlaceNameVO, error) {
	var out PlaceNameVO
	if err := c.get(ctx, fmt.Sprintf("/place-name/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchPlaceNames searches by ancient or modern name.
func (c *Client) SearchPlaceNames(ctx context.Context, keyword string) ([]PlaceNameVO, error) {
	var out []PlaceNameVO
	if err := c.get(ctx, "/place-name/search?keyword="+url.QueryEscape(keyword), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPlaceNamePage returns one page of place-name mappings.
func (c *Client) GetPlaceNamePage(ctx context.Context, page, size int) (*PageResult[PlaceNameVO], error) {
	var out PageResult[PlaceNameVO]
	if err := c.get(ctx, fmt.Sprintf("/place-name/page?page=%d&size=%d", page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
