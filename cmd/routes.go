package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"vizigoBack/internal/metrics"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, requestID, app.logRequest, secureHeaders, makeResponseJSON)
	route := func(pattern string) alice.Chain {
		return standardMiddleware.Append(instrument(pattern), exactPath(pattern))
	}

	mux := pat.New()

	// Registered ahead of the slash routes so pat does not add its own 301.
	mux.Post("/update_bike", standardMiddleware.ThenFunc(redirectSlash))
	mux.Post("/rental", standardMiddleware.ThenFunc(redirectSlash))

	// Bikes
	mux.Post("/update_bike/", route("/update_bike/").ThenFunc(app.bikeHandler.UpdateBike))
	mux.Get("/bikes", route("/bikes").ThenFunc(app.bikeHandler.GetBikes))

	// Rentals
	mux.Post("/rental/", route("/rental/").ThenFunc(app.rentalHandler.CreateRental))

	if app.cfg.Server.OpenAPI {
		mux.Get("/openapi.json", route("/openapi.json").ThenFunc(app.openAPI))
	}
	mux.Get("/metrics", metrics.Handler())

	return mux
}
