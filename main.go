package main

import (
	"log"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matst80/slask-catalog/pkg/common"
	"github.com/matst80/slask-catalog/pkg/server"
	"github.com/matst80/slask-catalog/pkg/storage"
)

var country = "se"
var dataDir = "data"
var publicDir = "public"
var listenAddress = ":8080"

func init() {
	if c, ok := os.LookupEnv("COUNTRY"); ok {
		country = c
	}
	if d, ok := os.LookupEnv("DATA_DIR"); ok {
		dataDir = d
	}
	if p, ok := os.LookupEnv("PUBLIC_DIR"); ok {
		publicDir = p
	}
	if l, ok := os.LookupEnv("LISTEN_ADDRESS"); ok {
		listenAddress = l
	}
}

func main() {
	if err := os.MkdirAll(path.Join(dataDir, country), 0o755); err != nil {
		log.Fatalf("Failed to create data dir: %v", err)
	}
	diskStorage := storage.NewDiskStorage(country, dataDir)

	var filterStore storage.FilterStore = storage.NewDiskFilterStore(diskStorage)
	if redisUrl := os.Getenv("REDIS_URL"); redisUrl != "" {
		log.Printf("using redis filter store at %s", redisUrl)
		filterStore = storage.NewRedisFilterStore(redisUrl, os.Getenv("REDIS_PASSWORD"), country, 0)
	}

	ws := &server.CatalogServer{
		Storage:     diskStorage,
		Filters:     filterStore,
		CatalogFile: "data.json",
		ExportFile:  "filtered_results.json",
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("GET /data.json", common.JsonHandler(ws.GetData))
	mux.HandleFunc("GET /api/products", common.JsonHandler(ws.GetProducts))
	mux.HandleFunc("POST /api/set-filters", common.JsonHandler(ws.SetFilters))
	mux.HandleFunc("POST /api/clear-filters", common.JsonHandler(ws.ClearFilters))
	mux.HandleFunc("GET /api/save-results", common.JsonHandler(ws.SaveResults))

	mux.HandleFunc("POST /api/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.Handle("/", http.FileServer(http.Dir(publicDir)))

	timeouts := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       30 * time.Second,
		Write:      30 * time.Second,
		Idle:       60 * time.Second,
		Shutdown:   15 * time.Second,
		Hook:       5 * time.Second,
	})
	srv := common.NewServerWithTimeouts(&http.Server{Addr: listenAddress, Handler: mux}, timeouts)

	common.RunServerWithShutdown(srv, "slask-catalog", timeouts.Shutdown, timeouts.Hook)
}
