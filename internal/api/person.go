// File: internal/api/person.go
package api

import (
	"context"
	"fmt"
)

// PersonVO is a historical figure as the platform returns it.
type PersonVO struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	Surname        *string  `json:"surname"`        // 姓氏
	GivenName      *string  `json:"givenName"`      // 名（本名）
	CourtesyName   *string  `json:"courtesyName"`   // 字
	ArtName        *string  `json:"artName"`        // 号
	PosthumousName *string  `json:"posthumousName"` // 谥号
	TempleName     *string  `json:"templeName"`     // 庙号
	DynastyID      uint     `json:"dynastyId"`
	DynastyName    *string  `json:"dynastyName"`
	BirthYear      *int     `json:"birthYear"`
	DeathYear      *int     `json:"deathYear"`
	Summary        string   `json:"summary"`
	Achievements   []string `json:"achievements"`
}

// GetRandomPersons returns count random figures, as used on the home page.
func (c *Client) GetRandomPersons(ctx context.Context, count int) ([]PersonVO, error) {
	if count <= 0 {
		count = 6
	}
	var out []PersonVO
	if err := c.get(ctx, fmt.Sprintf("/person/random?count=%d", count), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPerson returns one figure by id.
func (c *Client) GetPerson(ctx context.Context, id uint) (*PersonVO, error) {
	var out PersonVO
	if err := c.get(ctx, fmt.Sprintf("/person/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPersons returns all figures.
func (c *Client) ListPersons(ctx context.Context) ([]PersonVO, error) {
	var out []PersonVO
	if err := c.get(ctx, "/person/list", &out); err != nil {
		return nil, err
	}
	return out, nil
}
