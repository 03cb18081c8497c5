package model

import "encoding/json"

type PlaceBidRequest struct {
	BidderID          string      `json:"bidder_id" validate:"required"`
	BidderDisplayName string      `json:"bidder_display_name"`
	Amount            json.Number `json:"amount" validate:"required"`
}

type BuyNowRequest struct {
	BuyerID          string `json:"buyer_id"`
	BuyerDisplayName string `json:"buyer_display_name"`
}
