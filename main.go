package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/jackc/pgx/v5/pgxpool"

	suppress_http "github.com/gDenisLit/suppress/suppress-http"
)

type RouteState struct {
	RequestIp string
}

func MakeRouteState(req *suppress_http.HttpRequest) *RouteState {
	return &RouteState{RequestIp: req.IpAddress}
}

func Index(req *suppress_http.HttpRequest, db *pgxpool.Conn, state *RouteState) *suppress_http.HttpResponse {
	return suppress_http.StringResponse("Hello, world!")
}

func Profile(req *suppress_http.HttpRequest, db *pgxpool.Conn, state *RouteState) *suppress_http.HttpResponse {
	return suppress_http.JsonResponse(map[string]string{
		"profile": "demo",
		"ip":      state.RequestIp,
	})
}

func main() {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	srv := suppress_http.NewInlineServer("3000", MakeRouteState, ctx)
	srv.Get("/", Index)

	users := suppress_http.NewRouteTable[RouteState]()
	users.Get("/profile", Profile)
	srv.AddSubTable("/user", users)

	srv.Start()
}
