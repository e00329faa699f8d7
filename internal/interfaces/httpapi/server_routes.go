package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerClubRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/clubs", handler.ListClubs)
}

func registerCareerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/careers", handler.StartCareer)
	mux.HandleFunc("GET /v1/careers/{careerID}", handler.GetCareer)
	mux.HandleFunc("PUT /v1/careers/{careerID}/window", handler.SetTransferWindow)
	mux.HandleFunc("PUT /v1/careers/{careerID}/date", handler.AdvanceDate)
	mux.HandleFunc("GET /v1/careers/{careerID}/squad", handler.ListSquad)
	mux.HandleFunc("GET /v1/careers/{careerID}/budget", handler.GetBudget)
	mux.HandleFunc("POST /v1/careers/{careerID}/budget/recalc", handler.RecalcWages)
	mux.HandleFunc("GET /v1/careers/{careerID}/scouting/players", handler.SearchPlayers)
	mux.HandleFunc("GET /v1/careers/{careerID}/scouting/players/{playerID}", handler.GetScoutReport)
	mux.HandleFunc("POST /v1/careers/{careerID}/matches", handler.SimulateMatch)
}

func registerTransferRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/careers/{careerID}/bids", handler.PlaceBid)
	mux.HandleFunc("POST /v1/careers/{careerID}/contracts", handler.NegotiateContract)
	mux.HandleFunc("POST /v1/careers/{careerID}/transfers", handler.FinaliseTransfer)
	mux.HandleFunc("POST /v1/careers/{careerID}/sales", handler.SellPlayer)
	mux.HandleFunc("GET /v1/careers/{careerID}/history", handler.ListTransferHistory)
	mux.HandleFunc("GET /v1/careers/{careerID}/offers", handler.ListPendingOffers)
	mux.HandleFunc("POST /v1/careers/{careerID}/offers/{offerID}/accept", handler.AcceptOffer)
	mux.HandleFunc("POST /v1/careers/{careerID}/offers/{offerID}/reject", handler.RejectOffer)
	mux.HandleFunc("POST /v1/careers/{careerID}/offers/{offerID}/counter", handler.CounterOffer)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/matchdays", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ProcessMatchday)))
}
