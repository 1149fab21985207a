package handler

import (
	"context"
	"net/http"
	"os"

	"github.com/wadjakorntonsri/go-link-hub/pkg/app"
	"github.com/wadjakorntonsri/go-link-hub/pkg/config"
)

var mux http.Handler

func init() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	a, err := app.New(context.Background(), cfg, cfg.NewLogger(os.Stdout), nil)
	if err != nil {
		panic(err)
	}
	mux = a.Handler
}

// Handler is the entrypoint for Vercel
func Handler(w http.ResponseWriter, r *http.Request) {
	mux.ServeHTTP(w, r)
}
