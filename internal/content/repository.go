// File: internal/content/repository.go

// Package content serves the built-in historical catalog: dynasties,
// figures, events, relics and place names.
package content

import (
	"errors"
	"math/rand"
	"sort"
	"strings"

	"github.com/huaxia-history/go-huaxia/internal/api"
)

var ErrNotFound = errors.New("content: not found")

// Repository answers catalog queries from the in-memory seed data.
type Repository struct {
	dynasties  []api.DynastyVO
	persons    []api.PersonVO
	events     []api.EventVO
	relics     []api.RelicVO
	placeNames []api.PlaceNameVO
}

func NewRepository() *Repository {
	return &Repository{
		dynasties:  seedDynasties,
		persons:    seedPersons,
		events:     seedEvents,
		relics:     seedRelics,
		placeNames: seedPlaceNames,
	}
}

func (r *Repository) Dynasties() []api.DynastyVO {
	out := make([]api.DynastyVO, len(r.dynasties))
	copy(out, r.dynasties)
	sort.Slice(out, func(i, j int) bool { return out[i].StartYear < out[j].StartYear })
	return out
}

func (r *Repository) DynastyByID(id uint) (*api.DynastyVO, error) {
	for _, d := range r.dynasties {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repository) Persons() []api.PersonVO {
	out := make([]api.PersonVO, len(r.persons))
	copy(out, r.persons)
	return out
}

func (r *Repository) PersonByID(id uint) (*api.PersonVO, error) {
	for _, p := range r.persons {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// RandomPersons returns up to count figures in random order.
func (r *Repository) RandomPersons(count int) []api.PersonVO {
	out := r.Persons()
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if count > 0 && count < len(out) {
		out = out[:count]
	}
	return out
}

func (r *Repository) Events() []api.EventVO {
	out := make([]api.EventVO, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Repository) EventByID(id uint) (*api.EventVO, error) {
	for _, e := range r.events {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repository) Relics() []api.RelicVO {
	out := make([]api.RelicVO, len(r.relics))
	copy(out, r.relics)
	return out
}

func (r *Repository) RelicByID(id uint) (*api.RelicVO, error) {
	for _, rel := range r.relics {
		if rel.ID == id {
			return &rel, nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repository) RelicsByDynasty(dynastyID uint) []api.RelicVO {
	var out []api.RelicVO
	for _, rel := range r.relics {
		if rel.DynastyID != nil && *rel.DynastyID == dynastyID {
			out = append(out, rel)
		}
	}
	return out
}

func (r *Repository) SearchRelics(keyword string) []api.RelicVO {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil
	}
	var out []api.RelicVO
	for _, rel := range r.relics {
		if strings.Contains(rel.Name, keyword) || strings.Contains(rel.Description, keyword) ||
			strings.Contains(rel.Location, keyword) {
			out = append(out, rel)
		}
	}
	return out
}

func (r *Repository) PlaceNames() []api.PlaceNameVO {
	out := make([]api.PlaceNameVO, len(r.placeNames))
	copy(out, r.placeNames)
	return out
}

func (r *Repository) PlaceNameByID(id uint) (*api.PlaceNameVO, error) {
	for _, p := range r.placeNames {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repository) SearchPlaceNames(keyword string) []api.PlaceNameVO {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil
	}
	var out []api.PlaceNameVO
	for _, p := range r.placeNames {
		if strings.Contains(p.AncientName, keyword) || strings.Contains(p.ModernName, keyword) ||
			strings.Contains(p.ModernLocation, keyword) {
			out = append(out, p)
		}
	}
	return out
}

// PlaceNamePage returns one page of place names, 1-based.
func (r *Repository) PlaceNamePage(page, size int) api.PageResult[api.PlaceNameVO] {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	total := len(r.placeNames)
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	list := make([]api.PlaceNameVO, end-start)
	copy(list, r.placeNames[start:end])

	return api.PageResult[api.PlaceNameVO]{
		List:       list,
		Total:      int64(total),
		PageNum:    page,
		PageSize:   size,
		TotalPages: totalPages,
	}
}
