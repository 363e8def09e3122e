// File: internal/api/event.go
package api

import (
	"context"
	"fmt"
)

// EventVO is a historical event as the platform returns it.
type EventVO struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	StartYear *int    `json:"startYear"`
	EndYear   *int    `json:"endYear"`
	DynastyID *uint   `json:"dynastyId"`
	Category  *string `json:"category"`
	Summary   *string `json:"summary"`
	Details   *string `json:"details"`
}

// ListEvents returns all events.
func (c *Client) ListEvents(ctx context.Context) ([]EventVO, error) {
	var out []EventVO
	if err := c.get(ctx, "/events", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEvent returns one event by id.
func (c *Client) GetEvent(ctx context.Context, id uint) (*EventVO, error) {
	var out EventVO
	if err := c.get(ctx, fmt.Sprintf("/events/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
