// File: internal/handlers/content_handlers.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/huaxia-history/go-huaxia/internal/content"
)

// ContentHandler serves the historical catalog endpoints.
type ContentHandler struct {
	Repo *content.Repository
}

func NewContentHandler(repo *content.Repository) *ContentHandler {
	return &ContentHandler{Repo: repo}
}

func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (h *ContentHandler) writeLookup(w http.ResponseWriter, data interface{}, err error) {
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			writeError(w, "未找到相关记录", http.StatusNotFound)
			return
		}
		writeError(w, "服务器内部错误", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *ContentHandler) ListDynasties(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Repo.Dynasties())
}

func (h *ContentHandler) GetDynasty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "无效的ID", http.StatusBadRequest)
		return
	}
	d, err := h.Repo.DynastyByID(id)
	h.writeLookup(w, d, err)
}

func (h *ContentHandler) ListPersons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Repo.Persons())
}

func (h *ContentHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "无效的ID", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.PersonByID(id)
	h.writeLookup(w, p, err)
}

func (h *ContentHandler) GetRandomPersons(w http.ResponseWriter, r *http.Request) {
	count, _ := strconv.Atoi(r.URL.Query().Get("count"))
	if count <= 0 {
		count = 6
	}
	writeJSON(w, http.StatusOK, h.Repo.RandomPersons(count))
}

func (h *ContentHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Repo.Events())
}

func (h *ContentHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "无效的ID", http.StatusBadRequest)
		return
	}
	e, err := h.Repo.EventByID(id)
	h.writeLookup(w, e, err)
}

func (h *ContentHandler) ListRelics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Repo.Relics())
}

func (h *ContentHandler) GetRelic(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "无效的ID", http.StatusBadRequest)
		return
	}
	rel, err := h.Repo.RelicByID(id)
	h.writeLookup(w, rel, err)
}

func (h *ContentHandler) GetRelicsByDynasty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "无效的ID", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Repo.RelicsByDynasty(id))
}

func (h *ContentHandler) SearchRelics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Repo.SearchRelics(r.URL.Query().Get("keyword")))
}

func (h *ContentHandler) ListPlaceNames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Repo.PlaceNames())
}

func (h *ContentHandler) GetPlaceName(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "无效的ID", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.PlaceNameByID(id)
	h.writeLookup(w, p, err)
}

func (h *ContentHandler) SearchPlaceNames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Repo.SearchPlaceNames(r.URL.Query().Get("keyword")))
}

func (h *ContentHandler) GetPlaceNamePage(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	writeJSON(w, http.StatusOK, h.Repo.PlaceNamePage(page, size))
}
