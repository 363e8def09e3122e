// File: internal/content/repository_test.go
package content

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynastiesAreChronological(t *testing.T) {
	repo := NewRepository()
	dynasties := repo.Dynasties()
	require.NotEmpty(t, dynasties)
	assert.True(t, sort.SliceIsSorted(dynasties, func(i, j int) bool {
		return dynasties[i].StartYear < dynasties[j].StartYear
	}))
	assert.Equal(t, "夏朝", dynasties[0].Name)
}

func TestLookupsByID(t *testing.T) {
	repo := NewRepository()

	d, err := repo.DynastyByID(6)
	require.NoError(t, err)
	assert.Equal(t, "唐朝", d.Name)

	_, err = repo.DynastyByID(999)
	assert.ErrorIs(t, err, ErrNotFound)

	p, err := repo.PersonByID(1)
	require.NoError(t, err)
	assert.Equal(t, "秦始皇", p.Name)

	e, err := repo.EventByID(4)
	require.NoError(t, err)
	assert.Equal(t, "开辟丝绸之路", e.Title)
}

func TestRandomPersonsBounded(t *testing.T) {
	repo := NewRepository()
	assert.Len(t, repo.RandomPersons(3), 3)
	assert.Len(t, repo.RandomPersons(100), len(repo.Persons()))
}

func TestRelicFilters(t *testing.T) {
	repo := NewRepository()

	qin := repo.RelicsByDynasty(4)
	require.NotEmpty(t, qin)
	for _, rel := range qin {
		assert.Equal(t, uint(4), *rel.DynastyID)
	}

	hits := repo.SearchRelics("长城")
	require.Len(t, hits, 1)
	assert.Equal(t, "长城", hits[0].Name)

	assert.Empty(t, repo.SearchRelics("   "))
}

func TestPlaceNameSearchMatchesAncientAndModern(t *testing.T) {
	repo := NewRepository()
	assert.NotEmpty(t, repo.SearchPlaceNames("长安"))
	assert.NotEmpty(t, repo.SearchPlaceNames("西安"))
	assert.Empty(t, repo.SearchPlaceNames("不存在的地名"))
}

func TestPlaceNamePagination(t *testing.T) {
	repo := NewRepository()
	total := len(repo.PlaceNames())

	page := repo.PlaceNamePage(1, 3)
	assert.Equal(t, int64(total), page.Total)
	assert.Len(t, page.List, 3)
	assert.Equal(t, (total+2)/3, page.TotalPages)

	// out-of-range pages come back empty, not as an error
	far := repo.PlaceNamePage(99, 3)
	assert.Empty(t, far.List)
	assert.Equal(t, int64(total), far.Total)
}
