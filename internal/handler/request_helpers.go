package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/IdleMiner_Go/internal/logger"
)

// PlayerIDParam is the chi URL parameter naming the player.
const PlayerIDParam = "playerID"

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written and the
// handler should return.
//
//	var req MineRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Mine once"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(fmt.Sprintf("Invalid %s request", actionName), "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))
	return nil
}

// playerID reads the player ID route parameter, writing a 400 when absent.
func playerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, PlayerIDParam)
	if id == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingPlayerID)
		return "", false
	}
	return id, true
}
