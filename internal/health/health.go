package health

import (
	"net/http"
	"time"

	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/logger"
	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/utils"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var startTime = time.Now()

// SetupRouter construit les routes d'observation du worker : statut,
// healthcheck de la plateforme d'hébergement et métriques Prometheus.
func SetupRouter() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", rootHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}

// StartServer lance le listener en arrière-plan ; le run de synchronisation
// n'en dépend pas.
func StartServer(port string) {
	handler := SetupRouter()
	go func() {
		if err := http.ListenAndServe(":"+port, handler); err != nil && err != http.ErrServerClosed {
			logger.Error("Health server failed: %v", err)
		}
	}()
	logger.Info("Health endpoint running on :%s", port)
}

// rootHandler affiche les routes disponibles du worker
func rootHandler(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, map[string]interface{}{
		"name":    "LeetCode Analytics Sync Worker",
		"version": "1.0.0",
		"status":  "running",
		"routes": []map[string]string{
			{"method": "GET", "path": "/health", "description": "Healthcheck du worker"},
			{"method": "GET", "path": "/metrics", "description": "Métriques Prometheus"},
		},
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, map[string]interface{}{
		"status": "running",
		"uptime": time.Since(startTime).String(),
	})
}
