package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"depthjournal/internal/journal"
	"depthjournal/internal/media"
)

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	u, err := s.eng.SignIn(req.Email)
	if err != nil {
		var verr *journal.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.log.Info().Str("user_id", u.ID).Msg("signed in")
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.eng.CurrentUser()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if u == nil {
		writeError(w, http.StatusNotFound, "no user signed in")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := s.eng.SignOut(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}

// mediaUpload is the wire form of an attachment: raw bytes as base64
// plus the MIME type the codec derives the kind from.
type mediaUpload struct {
	MIMEType string `json:"mime_type"`
	Name     string `json:"name"`
	Data     string `json:"data"`
}

type createEntryRequest struct {
	Title    string               `json:"title"`
	Content  string               `json:"content"`
	Emotions []journal.EmotionTag `json:"emotions"`
	Sensory  journal.SensoryNote  `json:"sensory"`
	Media    *mediaUpload         `json:"media"`
}

// maxEntryBody bounds the create-entry request body at the transport
// edge: 5 MiB of raw media grows to ~7 MiB as base64, plus JSON framing.
// Oversized uploads are refused before being read into memory.
const maxEntryBody = 8 << 20

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	r.Body = http.MaxBytesReader(w, r.Body, maxEntryBody)
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	draft := journal.Draft{
		Title:    req.Title,
		Content:  req.Content,
		Emotions: req.Emotions,
		Sensory:  req.Sensory,
	}
	if req.Media != nil {
		raw, err := base64.StdEncoding.DecodeString(req.Media.Data)
		if err != nil {
			writeError(w, http.StatusBadRequest, "media data is not valid base64")
			return
		}
		asset, err := media.Encode(raw, req.Media.MIMEType, req.Media.Name)
		if err != nil {
			if errors.Is(err, media.ErrTooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, err.Error())
				return
			}
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		draft.Media = asset
	}

	entry, err := s.eng.CreateEntry(userID, draft)
	if err != nil {
		var verr *journal.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.log.Info().
		Str("user_id", userID).
		Int64("entry_id", entry.ID).
		Float64("score", entry.RelevanceScore).
		Msg("entry created")
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	entries, decodeErrs, err := s.eng.ListRanked(userID)
	if err != nil {
		var verr *journal.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Bad records are surfaced next to the partial results, never dropped
	// silently and never fatal to the listing.
	errStrings := make([]string, 0, len(decodeErrs))
	for _, derr := range decodeErrs {
		s.log.Warn().Str("key", derr.Key).Err(derr.Err).Msg("undecodable entry record")
		errStrings = append(errStrings, derr.Error())
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"entries": entries,
		"errors":  errStrings,
	})
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	entryID, err := strconv.ParseInt(chi.URLParam(r, "entryID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "entry id must be an integer")
		return
	}

	if err := s.eng.DeleteEntry(userID, entryID); err != nil {
		var verr *journal.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
