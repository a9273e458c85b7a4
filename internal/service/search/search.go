package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/ovsienko/orderdesk/internal/models"
)

const OrderIndex = "orders"

type OrderDoc struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	Categories []string  `json:"categories"`
	Colors     []string  `json:"colors"`
}

func DocFromOrder(o *models.Order) OrderDoc {
	doc := OrderDoc{
		ID:        o.ID,
		UserID:    o.UserID,
		CreatedAt: o.CreatedAt,
	}
	for _, it := range o.Items {
		doc.Categories = append(doc.Categories, it.Category)
		doc.Colors = append(doc.Colors, it.Color)
	}
	return doc
}

func Index(ctx context.Context, es *elasticsearch.Client, order *models.Order) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(DocFromOrder(order)); err != nil {
		return fmt.Errorf("index order: %w", err)
	}

	res, err := es.Index(
		OrderIndex,
		&buf,
		es.Index.WithDocumentID(fmt.Sprint(order.ID)),
		es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index order: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index order: %s", res.String())
	}
	return nil
}

func Search(ctx context.Context, es *elasticsearch.Client, query string, from, size int) (int64, []OrderDoc, error) {
	body := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"categories^2", "colors"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("search orders: %w", err)
	}

	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(OrderIndex),
		es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search orders: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, nil, fmt.Errorf("search orders: %s", res.String())
	}

	var r struct {
		Hits struct {
			Total struct{ Value int64 } `json:"total"`
			Hits  []struct {
				Source OrderDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	docs := make([]OrderDoc, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		docs[i] = hit.Source
	}
	return r.Hits.Total.Value, docs, nil
}
