package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gobid/auctionhouse/internal/model"
	"github.com/gobid/auctionhouse/pkg/config"
	"github.com/google/uuid"
)

var requestIDKey = "X-Request-ID"

func writeJson(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to write json response", "status", status, "error", err)
	}
}

func GetUserClaims(ctx context.Context) *config.UserClaims {
	claims, ok := ctx.Value(config.UserClaimKey).(*config.UserClaims)
	if !ok {
		return nil
	}
	return claims
}

func requestID(w http.ResponseWriter, r *http.Request) string {
	// fetch request ID , if not found generate new UUID
	reqID := r.Header.Get(requestIDKey)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	// This ensures the client gets the ID whether they sent it or we created it.
	w.Header().Set(requestIDKey, reqID)
	return reqID
}

func RespondSuccessJSON[T any](w http.ResponseWriter, r *http.Request, status int, message string, data T) {
	payload := model.APIResponse[T]{
		Status:  "success",
		Message: message,
		Metadata: model.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: requestID(w, r),
		},
		Data:  data,
		Error: nil,
	}
	writeJson(w, status, payload)
}

func RespondErrorJSON(w http.ResponseWriter, r *http.Request, status int, code string, message string, details []model.ErrorDetails) {
	payload := model.APIResponse[any]{
		Status: "error",
		Metadata: model.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: requestID(w, r),
		},
		Error: &model.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	writeJson(w, status, payload)
}

// RespondMinBidJSON is the BID_TOO_LOW rejection; it carries the computed
// minimum next bid.
func RespondMinBidJSON(w http.ResponseWriter, r *http.Request, message string, minNextBid int64) {
	payload := model.APIResponse[any]{
		Status: "error",
		Metadata: model.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: requestID(w, r),
		},
		Error: &model.APIError{
			Code:       ErrBidLow.Error(),
			Message:    message,
			MinNextBid: minNextBid,
		},
	}
	writeJson(w, http.StatusBadRequest, payload)
}
