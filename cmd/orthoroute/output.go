package main

import (
	"encoding/json"
	"io"

	"orthoroute/route"
)

type edgeJSON struct {
	ID     string   `json:"id"`
	Style  string   `json:"style"`
	Points [][2]int `json:"points"`
}

type routesJSON struct {
	Edges []edgeJSON `json:"edges"`
}

// encodeRoutes lists the routes in the order the pass stored them.
func encodeRoutes(ctx *route.Context) routesJSON {
	out := routesJSON{Edges: make([]edgeJSON, 0, ctx.Len())}
	for _, r := range ctx.Routes() {
		e := edgeJSON{ID: r.Edge.ID, Style: r.Style.String()}
		for _, p := range r.Path {
			e.Points = append(e.Points, [2]int{p.X, p.Y})
		}
		out.Edges = append(out.Edges, e)
	}
	return out
}

func writeJSON(w io.Writer, ctx *route.Context) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(encodeRoutes(ctx))
}

func marshalRoutes(ctx *route.Context) (string, error) {
	b, err := json.MarshalIndent(encodeRoutes(ctx), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
