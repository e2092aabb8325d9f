package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/AyaAid/Stayabucks/internal/models"
)

// DrinkIndex keeps catalog drinks in an Elasticsearch index for full-text lookup.
type DrinkIndex struct {
	Client *elasticsearch.Client
	Index  string
}

func NewDrinkIndex(client *elasticsearch.Client, index string) *DrinkIndex {
	return &DrinkIndex{Client: client, Index: index}
}

func queryBody(query string, from, size int) map[string]any {
	return map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     strings.TrimSpace(query),
				"fields":    []string{"name^2", "description"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}
}

func (d *DrinkIndex) SearchDrinks(ctx context.Context, query string, from, size int) (int64, []models.Drink, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(queryBody(query, from, size)); err != nil {
		return 0, nil, fmt.Errorf("search: encode query: %w", err)
	}

	es := d.Client
	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(d.Index),
		es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return 0, nil, fmt.Errorf("search: %s: %s", res.Status(), body)
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Drink `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, fmt.Errorf("search: decode response: %w", err)
	}

	drinks := make([]models.Drink, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		drinks[i] = hit.Source
	}
	return r.Hits.Total.Value, drinks, nil
}

// IndexDrinks writes each drink under its id, replacing any previous document.
func (d *DrinkIndex) IndexDrinks(ctx context.Context, drinks []models.Drink) error {
	es := d.Client
	for _, drink := range drinks {
		body, err := json.Marshal(drink)
		if err != nil {
			return fmt.Errorf("index drink %d: %w", drink.ID, err)
		}

		res, err := es.Index(
			d.Index,
			bytes.NewReader(body),
			es.Index.WithContext(ctx),
			es.Index.WithDocumentID(strconv.FormatUint(uint64(drink.ID), 10)),
			es.Index.WithRefresh("true"),
		)
		if err != nil {
			return fmt.Errorf("index drink %d: %w", drink.ID, err)
		}
		if res.IsError() {
			msg, _ := io.ReadAll(res.Body)
			res.Body.Close()
			return fmt.Errorf("index drink %d: %s: %s", drink.ID, res.Status(), msg)
		}
		res.Body.Close()
	}
	return nil
}
