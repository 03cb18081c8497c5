package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gobid/auctionhouse/internal/auction"
	"github.com/gobid/auctionhouse/internal/model"
	valid "github.com/gobid/auctionhouse/pkg/validator"
	"github.com/google/uuid"
)

var validate = valid.GetValidator()

const auctionParamKey string = "auctionId"

type AuctionHandler struct {
	svc auction.Servicer
}

func NewAuctionHandler(svc auction.Servicer) (*AuctionHandler, error) {
	return &AuctionHandler{
		svc: svc,
	}, nil
}

// PlaceBid godoc
//
//	@Summary		Place a Bid on an Auction
//	@Description	Place a bid on the auction with the given ID
//	@Tags			Auctions
//	@Accept			json
//	@Produce		json
//	@Param			auctionId	path		string					true	"Auction ID"
//	@Param			bid			body		model.PlaceBidRequest	true	"Bid details"
//	@Success		200			{object}	map[string]any
//	@Failure		400			{object}	map[string]any
//	@Failure		404			{object}	map[string]any
//	@Failure		500			{object}	map[string]any
//	@Router			/auctions/{auctionId}/bids [post]
func (h *AuctionHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	auctionID := chi.URLParam(r, auctionParamKey)
	if auctionID == "" {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrMissingParam.Error(), "Auction ID is required", nil)
		return
	}

	var req model.PlaceBidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrInvalidJson.Error(), "Invalid JSON format", nil)
		return
	}

	if err := validate.Struct(req); err != nil {
		var details []model.ErrorDetails
		if validErrs, ok := err.(validator.ValidationErrors); ok {
			for _, vErr := range validErrs {
				details = append(details, model.ErrorDetails{
					Field: vErr.Field(),
					Issue: fmt.Sprintf("failed on tag '%s' with param '%s'", vErr.Tag(), vErr.Param()),
				})
			}
		}
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrMissingFields.Error(), "Input validation failed", details)
		return
	}

	state, err := h.svc.PlaceBid(r.Context(), auction.PlaceBidInput{
		AuctionID:   auctionID,
		BidderID:    req.BidderID,
		DisplayName: req.BidderDisplayName,
		Amount:      req.Amount,
	})
	if err != nil {
		h.respondBidError(w, r, auctionID, err)
		return
	}

	resp := model.BidResult{
		Success:           true,
		AntiSnipeExtended: state.AntiSnipeExtended,
		AuctionState:      state,
	}
	RespondSuccessJSON(w, r, http.StatusOK, "Bid placed successfully", resp)
}

func (h *AuctionHandler) respondBidError(w http.ResponseWriter, r *http.Request, auctionID string, err error) {
	var minErr *auction.MinBidError
	switch {
	case errors.As(err, &minErr):
		RespondMinBidJSON(w, r, minErr.Error(), minErr.MinNextBid)
	case errors.Is(err, auction.ErrMissingFields):
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrMissingFields.Error(), err.Error(), nil)
	case errors.Is(err, auction.ErrInvalidAmount):
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrInvalidAmount.Error(), err.Error(), nil)
	case errors.Is(err, auction.ErrAuctionNotFound):
		RespondErrorJSON(w, r, http.StatusNotFound, ErrAuctionNotFound.Error(), err.Error(), nil)
	case errors.Is(err, auction.ErrInvalidAuctionState):
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrInvalidState.Error(), err.Error(), nil)
	case errors.Is(err, auction.ErrSelfBid):
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrSelfBidding.Error(), err.Error(), nil)
	case errors.Is(err, auction.ErrAuctionExpired):
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrExpired.Error(), err.Error(), nil)
	case errors.Is(err, auction.ErrAlreadyHighest):
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrAlreadyHighest.Error(), err.Error(), nil)
	default:
		slog.Error("[BID] failed to place bid", "auction_id", auctionID, "error", err)
		RespondErrorJSON(w, r, http.StatusInternalServerError, ErrDb.Error(), "failed to place bid", nil)
	}
}

// BuyNow godoc
//
//	@Summary		Buy an Auction Immediately
//	@Description	Settle the auction at its fixed buy-now price, bypassing the bid ladder
//	@Tags			Auctions
//	@Accept			json
//	@Produce		json
//	@Param			auctionId	path		string				true	"Auction ID"
//	@Param			buyer		body		model.BuyNowRequest	true	"Buyer details"
//	@Success		200			{object}	map[string]any
//	@Failure		400			{object}	map[string]any
//	@Failure		401			{object}	map[string]any
//	@Failure		403			{object}	map[string]any
//	@Failure		404			{object}	map[string]any
//	@Router			/auctions/{auctionId}/buy-now [post]
func (h *AuctionHandler) BuyNow(w http.ResponseWriter, r *http.Request) {
	auctionID := chi.URLParam(r, auctionParamKey)
	if auctionID == "" {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrMissingParam.Error(), "Auction ID is required", nil)
		return
	}

	var req model.BuyNowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrInvalidJson.Error(), "Invalid JSON format", nil)
		return
	}

	// A verified session identity is preferred; the raw buyer id is the
	// trusted fallback when no token was sent.
	var authedID *uuid.UUID
	if claims := GetUserClaims(r.Context()); claims != nil {
		authedID = &claims.UserID
	}

	state, err := h.svc.BuyNow(r.Context(), auction.BuyNowInput{
		AuctionID:     auctionID,
		BuyerID:       req.BuyerID,
		DisplayName:   req.BuyerDisplayName,
		AuthedBuyerID: authedID,
	})
	if err != nil {
		h.respondBuyNowError(w, r, auctionID, err)
		return
	}

	resp := model.BidResult{
		Success:           true,
		AntiSnipeExtended: false,
		AuctionState:      state,
	}
	RespondSuccessJSON(w, r, http.StatusOK, "Auction bought successfully", resp)
}

func (h *AuctionHandler) respondBuyNowError(w http.ResponseWriter, r *http.Request, auctionID string, err error) {
	switch {
	case errors.Is(err, auction.ErrMissingFields):
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrMissingFields.Error(), err.Error(), nil)
	case errors.Is(err, auction.ErrMissingToken):
		RespondErrorJSON(w, r, http.StatusUnauthorized, ErrMissingToken.Error(), err.Error(), nil)
	case errors.Is(err, auction.ErrTokenMismatch):
		RespondErrorJSON(w, r, http.StatusForbidden, ErrTokenMismatch.Error(), err.Error(), nil)
	case errors.Is(err, auction.ErrAuctionNotFound):
		RespondErrorJSON(w, r, http.StatusNotFound, ErrAuctionNotFound.Error(), err.Error(), nil)
	case errors.Is(err, auction.ErrInvalidAuctionState):
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrInvalidState.Error(), err.Error(), nil)
	case errors.Is(err, auction.ErrMissingBuyNowPrice):
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrNoBuyNow.Error(), err.Error(), nil)
	case errors.Is(err, auction.ErrSelfBid):
		RespondErrorJSON(w, r, http.StatusForbidden, ErrSelfPurchase.Error(), "sellers cannot buy their own auction", nil)
	default:
		slog.Error("[BUY-NOW] failed to settle auction", "auction_id", auctionID, "error", err)
		RespondErrorJSON(w, r, http.StatusInternalServerError, ErrDb.Error(), "failed to settle auction", nil)
	}
}

// GetAuction godoc
//
//	@Summary		Get Auction State
//	@Description	Retrieve the assembled auction snapshot with recent bids
//	@Tags			Auctions
//	@Accept			json
//	@Produce		json
//	@Param			auctionId	path		string	true	"Auction ID"
//	@Success		200			{object}	map[string]any
//	@Failure		404			{object}	map[string]any
//	@Failure		500			{object}	map[string]any
//	@Router			/auctions/{auctionId} [get]
func (h *AuctionHandler) GetAuction(w http.ResponseWriter, r *http.Request) {
	auctionID := chi.URLParam(r, auctionParamKey)
	if auctionID == "" {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrMissingParam.Error(), "Auction ID is required", nil)
		return
	}

	state, err := h.svc.GetState(r.Context(), auctionID)
	if err != nil {
		if errors.Is(err, auction.ErrAuctionNotFound) {
			RespondErrorJSON(w, r, http.StatusNotFound, ErrAuctionNotFound.Error(), "Auction not found", nil)
			return
		}
		slog.Error("[AUCTION] failed to fetch state", "auction_id", auctionID, "error", err)
		RespondErrorJSON(w, r, http.StatusInternalServerError, ErrDb.Error(), "failed to retrieve auction state", nil)
		return
	}

	resp := map[string]any{
		"auction_state": state,
	}
	RespondSuccessJSON(w, r, http.StatusOK, "Auction state fetched successfully", resp)
}
