// Package preview serves rendered worlds over HTTP.
package preview

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"isocraft/internal/canvas"
	"isocraft/internal/config"
	"isocraft/internal/iso"
	"isocraft/internal/render"
	"isocraft/internal/world"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	maxSide       = 4096
)

// Handler builds an independent world for every request, so requests share
// nothing but the configuration.
type Handler struct {
	cfg config.Config
}

// NewRouter returns the preview routes.
func NewRouter(cfg config.Config) http.Handler {
	h := &Handler{cfg: cfg}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/render.png", h.RenderPNG)
	r.Get("/world", h.GetWorld)
	return r
}

var errMissingSeed = errors.New("missing seed")

func (h *Handler) seed(r *http.Request) (uint32, error) {
	s := r.URL.Query().Get("seed")
	if s == "" {
		if h.cfg.World.Seed != nil {
			return *h.cfg.World.Seed, nil
		}
		return 0, errMissingSeed
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q", s)
	}
	return uint32(v), nil
}

func intParam(r *http.Request, name string, def int) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > maxSide {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}

// RenderPNG handles GET /render.png?seed=&w=&h= and returns the frame as PNG.
func (h *Handler) RenderPNG(w http.ResponseWriter, r *http.Request) {
	seed, err := h.seed(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	width, err := intParam(r, "w", defaultWidth)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	height, err := intParam(r, "h", defaultHeight)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	rd, err := render.New(h.cfg.Render, nil)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	gw := world.New(seed, h.cfg)
	gw.Memoize()

	ras := canvas.NewRaster(width, height, rd.Background)
	rd.HUD = false
	rd.Draw(ras, render.Scene{
		World:  gw,
		Camera: iso.Fit(float32(h.cfg.Render.Tile), width, height, gw.Dims, gw.StackHeight()),
		Width:  width,
		Height: height,
	})

	var buf bytes.Buffer
	if err := ras.WritePNG(&buf); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-World-Seed", strconv.FormatUint(uint64(seed), 10))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("write png: %v", err)
	}
}

// TreeJSON is one tree in a world response.
type TreeJSON struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Base int    `json:"base"`
	Leaf string `json:"leaf"`
}

// WorldResponse describes the generated columns of a world.
type WorldResponse struct {
	Seed     uint32     `json:"seed"`
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	SeaLevel int        `json:"sea_level"`
	Heights  [][]int    `json:"heights"`
	Biomes   [][]string `json:"biomes"`
	Trees    []TreeJSON `json:"trees"`
}

// Describe samples every column of w.
func Describe(w *world.World) WorldResponse {
	resp := WorldResponse{
		Seed:     w.Seed,
		Width:    w.Dims.W,
		Height:   w.Dims.H,
		SeaLevel: w.Terrain.SeaLevel,
		Heights:  make([][]int, w.Dims.H),
		Biomes:   make([][]string, w.Dims.H),
		Trees:    []TreeJSON{},
	}
	for y := 0; y < w.Dims.H; y++ {
		resp.Heights[y] = make([]int, w.Dims.W)
		resp.Biomes[y] = make([]string, w.Dims.W)
		for x := 0; x < w.Dims.W; x++ {
			resp.Heights[y][x] = w.HeightAt(x, y)
			resp.Biomes[y][x] = w.BiomeAt(x, y).String()
		}
	}
	for _, t := range w.Trees() {
		resp.Trees = append(resp.Trees, TreeJSON{X: t.X, Y: t.Y, Base: t.Base, Leaf: t.Leaf.String()})
	}
	return resp
}

// GetWorld handles GET /world?seed= and returns heights, biomes and trees.
func (h *Handler) GetWorld(w http.ResponseWriter, r *http.Request) {
	seed, err := h.seed(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	gw := world.New(seed, h.cfg)
	gw.Memoize()
	respondJSON(w, http.StatusOK, Describe(gw))
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
