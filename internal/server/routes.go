package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	mw "github.com/gobid/auctionhouse/internal/middleware"
)

func (s *Server) AuctionRoutes(mux *chi.Mux) {
	h := s.Deps.AuctionHandler
	mux.Route("/api/v1/auctions", func(r chi.Router) {
		r.Get("/{auctionId}", h.GetAuction)
		r.Post("/{auctionId}/bids", h.PlaceBid)
		r.With(mw.OptionalAuth(s.Deps.Verifier)).Post("/{auctionId}/buy-now", h.BuyNow)
	})
}

func (s *Server) CommonRoutes(mux *chi.Mux) {
	mux.HandleFunc("GET /api/v1/health", healthCheck)
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"message": "ok",
		"time":    time.Now().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	json.NewEncoder(w).Encode(resp)

}
