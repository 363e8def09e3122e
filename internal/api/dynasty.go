// File: internal/api/dynasty.go
package api

import (
	"context"
	"fmt"
	"math/rand"
)

// DynastyVO is a dynasty as the platform returns it.
type DynastyVO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	StartYear   int    `json:"startYear"`
	EndYear     int    `json:"endYear"`
	Capital     string `json:"capital"`
	Description string `json:"description"`
}

// Period formats the dynasty's time span for display.
func (d DynastyVO) Period() string {
	return FormatPeriod(d.StartYear, d.EndYear)
}

// FormatYear renders a signed year; negative years are BCE.
func FormatYear(year int) string {
	if year < 0 {
		return fmt.Sprintf("约公元前%d年", -year)
	}
	return fmt.Sprintf("公元%d年", year)
}

// FormatPeriod renders a year range for display.
func FormatPeriod(startYear, endYear int) string {
	return FormatYear(startYear) + " - " + FormatYear(endYear)
}

// RandomColor picks a display color in the muted HSL band the timeline
// uses for dynasties without a configured color.
func RandomColor() string {
	hue := rand.Intn(360)
	saturation := 45 + rand.Intn(30)
	lightness := 40 + rand.Intn(15)
	return fmt.Sprintf("hsl(%d %d%% %d%%)", hue, saturation, lightness)
}

// ListDynasties returns all dynasties in chronological order.
func (c *Client) ListDynasties(ctx context.Context) ([]DynastyVO, error) {
	var out []DynastyVO
	if err := c.get(ctx, "/dynasty/list", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDynasty returns one dynasty by id.
func (c *Client) GetDynasty(ctx context.Context, id uint) (*DynastyVO, error) {
	var out DynastyVO
	if err := c.get(ctx, fmt.Sprintf("/dynasty/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
