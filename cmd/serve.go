package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/atlas-cli/internal/aggregate"
	"github.com/sells-group/atlas-cli/internal/atlas"
	"github.com/sells-group/atlas-cli/internal/filter"
	"github.com/sells-group/atlas-cli/internal/model"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an HTTP API over the Atlas data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		client := newAtlasClient()
		r := newServeRouter(client)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// errBadRequest marks handler errors caused by the request itself.
var errBadRequest = eris.New("bad request")

func newServeRouter(client *atlas.Client) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	fetch := func(req *http.Request) ([]model.Plant, error) {
		service := atlas.ServiceAllPlants
		if s := req.URL.Query().Get("service"); s != "" {
			service = atlas.ServiceID(s)
		}
		limit := 0
		if l := req.URL.Query().Get("limit"); l != "" {
			n, err := strconv.Atoi(l)
			if err != nil {
				return nil, eris.Wrapf(errBadRequest, "invalid limit %q", l)
			}
			limit = n
		}
		plants, err := client.FetchAll(req.Context(), service, atlas.NewQueryParams(), limit)
		if err != nil {
			return nil, err
		}
		if state := req.URL.Query().Get("state"); state != "" {
			plants = filter.States(plants, []string{state})
		}
		if t := req.URL.Query().Get("type"); t != "" {
			et, err := parseEnergyType(t)
			if err != nil {
				return nil, eris.Wrapf(errBadRequest, "%v", err)
			}
			plants = filter.EnergyTypes(plants, []model.EnergyType{et})
		}
		return plants, nil
	}

	r.Get("/plants", func(w http.ResponseWriter, req *http.Request) {
		plants, err := fetch(req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, plants)
	})

	r.Get("/summary/states", func(w http.ResponseWriter, req *http.Request) {
		plants, err := fetch(req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, aggregate.ByState(plants))
	})

	r.Get("/summary/energy-types", func(w http.ResponseWriter, req *http.Request) {
		plants, err := fetch(req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, aggregate.ByEnergyType(plants))
	})

	r.Get("/summary/renewable", func(w http.ResponseWriter, req *http.Request) {
		plants, err := fetch(req)
		if err != nil {
			writeError(w, err)
			return
		}
		// JSON has no NaN; a missing percentage marshals as null.
		type share struct {
			State       string   `json:"state"`
			TotalMW     float64  `json:"total_mw"`
			RenewableMW float64  `json:"renewable_mw"`
			Percentage  *float64 `json:"percentage"`
		}
		shares := aggregate.RenewablePercentageByState(plants)
		out := make([]share, 0, len(shares))
		for _, s := range shares {
			item := share{State: s.State, TotalMW: s.TotalMW, RenewableMW: s.RenewableMW}
			if !math.IsNaN(s.Percentage) {
				pct := s.Percentage
				item.Percentage = &pct
			}
			out = append(out, item)
		}
		writeJSON(w, http.StatusOK, out)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	if errors.Is(err, errBadRequest) {
		status = http.StatusBadRequest
	}
	zap.L().Error("request failed", zap.Error(err))
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
