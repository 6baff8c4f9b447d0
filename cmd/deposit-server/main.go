// deposit-server exposes the deposit generators over HTTP: JSON point
// clouds per deposit type and top-down PNG plan views. Query parameters
// override the generation defaults per request, so a fixed URL is a
// reproducible view of one deposit.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"time"

	"depositlab/internal/core"
	_ "depositlab/internal/deposits/mineral"
	_ "depositlab/internal/deposits/petroleum"
	"depositlab/internal/render"

	"github.com/gorilla/mux"
)

var (
	addr = flag.String("addr", ":8080", "listen address")
	seed = flag.Int64("seed", 42, "default generation seed")
)

// generatorKeys lists the query parameters forwarded into the source
// factories.
var generatorKeys = []string{
	"count", "seed", "mode", "depth_factor", "complexity",
	"basin_size", "reservoirs", "trap_efficiency",
}

func main() {
	flag.Parse()

	router := mux.NewRouter()
	router.HandleFunc("/api/sources", sourcesHandler)
	router.HandleFunc("/api/cloud/{source}/{type}", cloudHandler)
	router.HandleFunc("/api/plan/{source}/{type}.png", planHandler)
	router.Use(logRequests)

	log.Printf("deposit-server listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, router))
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		start := time.Now()
		next.ServeHTTP(res, req)
		log.Printf("%s %s (%s)", req.Method, req.URL.Path, time.Since(start).Round(time.Microsecond))
	})
}

// newSource builds a configured source from the route and query values.
// The returned seed is the effective one after query overrides.
func newSource(req *http.Request) (core.Source, string, int64, error) {
	vars := mux.Vars(req)
	name := vars["source"]
	factory, ok := core.Sources()[name]
	if !ok {
		return nil, "", 0, fmt.Errorf("unknown source %q", name)
	}

	effectiveSeed := *seed
	cfg := map[string]string{"seed": fmt.Sprint(*seed)}
	for _, key := range generatorKeys {
		if v := req.URL.Query().Get(key); v != "" {
			cfg[key] = v
		}
	}
	if v, err := strconv.ParseInt(cfg["seed"], 10, 64); err == nil {
		effectiveSeed = v
	}
	src, err := factory(cfg)
	if err != nil {
		return nil, "", 0, err
	}
	return src, vars["type"], effectiveSeed, nil
}

func findType(src core.Source, name string) (core.DepositType, bool) {
	for _, dt := range src.Types() {
		if dt.Name == name {
			return dt, true
		}
	}
	return core.DepositType{}, false
}

type sourceInfo struct {
	Name  string     `json:"name"`
	Types []typeInfo `json:"types"`
}

type typeInfo struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func sourcesHandler(res http.ResponseWriter, req *http.Request) {
	var out []sourceInfo
	for name, factory := range core.Sources() {
		src, err := factory(nil)
		if err != nil {
			continue
		}
		info := sourceInfo{Name: name}
		for _, dt := range src.Types() {
			info.Types = append(info.Types, typeInfo{
				Name:  dt.Name,
				Color: fmt.Sprintf("#%02x%02x%02x", dt.Color.R, dt.Color.G, dt.Color.B),
			})
		}
		out = append(out, info)
	}
	writeJSON(res, out)
}

type cloudResponse struct {
	Source string       `json:"source"`
	Type   string       `json:"type"`
	Color  string       `json:"color"`
	Seed   int64        `json:"seed"`
	Count  int          `json:"count"`
	Points [][3]float64 `json:"points"`
}

func cloudHandler(res http.ResponseWriter, req *http.Request) {
	src, typeName, effectiveSeed, err := newSource(req)
	if err != nil {
		status := http.StatusBadRequest
		if _, ok := core.Sources()[mux.Vars(req)["source"]]; !ok {
			status = http.StatusNotFound
		}
		http.Error(res, err.Error(), status)
		return
	}
	dt, ok := findType(src, typeName)
	if !ok {
		http.Error(res, fmt.Sprintf("unknown deposit type %q", typeName), http.StatusNotFound)
		return
	}
	cloud, err := src.Generate(dt)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}

	out := cloudResponse{
		Source: src.Name(),
		Type:   dt.Name,
		Color:  fmt.Sprintf("#%02x%02x%02x", dt.Color.R, dt.Color.G, dt.Color.B),
		Seed:   effectiveSeed,
		Count:  cloud.Size(),
		Points: make([][3]float64, 0, cloud.Size()),
	}
	for _, p := range cloud.Points() {
		out.Points = append(out.Points, [3]float64{p.X, p.Y, p.Z})
	}
	writeJSON(res, out)
}

func planHandler(res http.ResponseWriter, req *http.Request) {
	src, typeName, _, err := newSource(req)
	if err != nil {
		status := http.StatusBadRequest
		if _, ok := core.Sources()[mux.Vars(req)["source"]]; !ok {
			status = http.StatusNotFound
		}
		http.Error(res, err.Error(), status)
		return
	}
	dt, ok := findType(src, typeName)
	if !ok {
		http.Error(res, fmt.Sprintf("unknown deposit type %q", typeName), http.StatusNotFound)
		return
	}
	cloud, err := src.Generate(dt)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}

	img := render.PlanView([]render.Layer{{
		Name:    dt.Name,
		Points:  cloud.Points(),
		Color:   dt.Color,
		Visible: true,
	}}, 512)

	res.Header().Set("Content-Type", "image/png")
	if err := png.Encode(res, img); err != nil {
		log.Printf("encoding plan view: %v", err)
	}
}

func writeJSON(res http.ResponseWriter, v any) {
	res.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(res).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}
