package server

import (
	"net/http"
	"net/url"

	"github.com/gorilla/schema"
)

type PageRequest struct {
	Page         int `json:"page" schema:"page,default:1"`
	ItemsPerPage int `json:"itemsPerPage" schema:"items_per_page,default:50"`
}

func GetPageRequestFromQuery(query url.Values, result *PageRequest) error {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder.Decode(result, query)
}

func GetPageRequest(r *http.Request) (*PageRequest, error) {
	result := &PageRequest{}
	if err := GetPageRequestFromQuery(r.URL.Query(), result); err != nil {
		return nil, err
	}
	return result, nil
}
