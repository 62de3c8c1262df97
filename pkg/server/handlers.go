package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matst80/slask-catalog/pkg/catalog"
	"github.com/matst80/slask-catalog/pkg/storage"
	"github.com/matst80/slask-catalog/pkg/types"
)

var (
	noQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskcatalog_queries_total",
		Help: "The total number of processed catalog queries",
	})
	noPagedQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskcatalog_paged_queries_total",
		Help: "The total number of processed paginated queries",
	})
	noFilterUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskcatalog_filter_updates_total",
		Help: "The total number of filter selection updates",
	})
	noFilterClears = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskcatalog_filter_clears_total",
		Help: "The total number of filter selection clears",
	})
)

// CatalogServer serves the product catalog with the stored filter
// selection applied. The catalog itself is never mutated, only the
// filter store is.
type CatalogServer struct {
	Storage     *storage.DiskStorage
	Filters     storage.FilterStore
	CatalogFile string
	ExportFile  string
}

type statusResponse struct {
	Status string `json:"status"`
}

type productsResponse struct {
	Products   []types.Product    `json:"products"`
	Pagination catalog.Pagination `json:"pagination"`
}

// loadFilteredProducts runs the query pipeline: stored filters, catalog
// load, filter, sort. With nothing stored the catalog passes through in
// file order.
func (ws *CatalogServer) loadFilteredProducts() ([]types.Product, error) {
	stored, err := ws.Filters.Load()
	if err != nil {
		return nil, err
	}

	products, err := ws.Storage.LoadProducts(ws.CatalogFile)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return products, nil
	}

	criteria, err := stored.Criteria()
	if err != nil {
		return nil, err
	}
	return catalog.Sort(catalog.Apply(products, criteria), stored.SortBy), nil
}

func (ws *CatalogServer) GetData(w http.ResponseWriter, r *http.Request, enc *json.Encoder) error {
	noQueries.Inc()
	products, err := ws.loadFilteredProducts()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	for i := range products {
		if err = enc.Encode(&products[i]); err != nil {
			return err
		}
	}
	return nil
}

func (ws *CatalogServer) GetProducts(w http.ResponseWriter, r *http.Request, enc *json.Encoder) error {
	noPagedQueries.Inc()
	pr, err := GetPageRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return err
	}

	products, err := ws.loadFilteredProducts()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return err
	}

	items, info, err := catalog.Paginate(products, pr.Page, pr.ItemsPerPage)
	if err != nil {
		var validation *types.ValidationError
		if errors.As(err, &validation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(productsResponse{Products: items, Pagination: info})
}

func (ws *CatalogServer) SetFilters(w http.ResponseWriter, r *http.Request, enc *json.Encoder) error {
	filters := &types.StoredFilters{}
	if err := json.NewDecoder(r.Body).Decode(filters); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return err
	}

	if err := ws.Filters.Save(filters); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return err
	}
	noFilterUpdates.Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(statusResponse{Status: "success"})
}

func (ws *CatalogServer) ClearFilters(w http.ResponseWriter, r *http.Request, enc *json.Encoder) error {
	if err := ws.Filters.Clear(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return err
	}
	noFilterClears.Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(statusResponse{Status: "success"})
}

// SaveResults persists the current filtered and sorted view as a line
// delimited export next to the catalog.
func (ws *CatalogServer) SaveResults(w http.ResponseWriter, r *http.Request, enc *json.Encoder) error {
	products, err := ws.loadFilteredProducts()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return err
	}

	if err := ws.Storage.SaveProducts(products, ws.ExportFile); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(statusResponse{Status: "success"})
}
