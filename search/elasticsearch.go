// search/elasticsearch.go
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/echo-xaudit/logging"
)

// ElasticsearchClient runs translated queries against one Elasticsearch
// index. Each filter clause is sent as a query_string filter, so clauses
// keep their Lucene syntax.
type ElasticsearchClient struct {
	esClient *elasticsearch.Client
	index    string
}

var (
	_ Client  = (*ElasticsearchClient)(nil)
	_ Indexer = (*ElasticsearchClient)(nil)
)

// NewElasticsearchClient creates a client for the index at the given URL.
func NewElasticsearchClient(esURL, index string) (*ElasticsearchClient, error) {
	return NewElasticsearchClientWithConfig(elasticsearch.Config{
		Addresses: []string{esURL},
	}, index)
}

func NewElasticsearchClientWithConfig(cfg elasticsearch.Config, index string) (*ElasticsearchClient, error) {
	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}
	return &ElasticsearchClient{esClient: esClient, index: index}, nil
}

type esSearchResponse struct {
	Took int `json:"took"`
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []struct {
			ID     string   `json:"_id"`
			Source Document `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Query executes query. An error response from the cluster is reported
// through Response.Status rather than as an error.
func (c *ElasticsearchClient) Query(ctx context.Context, query *Query) (*Response, error) {
	body, err := json.Marshal(buildRequestBody(query))
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	res, err := c.esClient.Search(
		c.esClient.Search.WithContext(ctx),
		c.esClient.Search.WithIndex(c.index),
		c.esClient.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		logger.Error("Error searching documents",
			zap.String("index", c.index),
			zap.Int("status", res.StatusCode),
			zap.String("response", res.String()))
		return &Response{Status: res.StatusCode, Start: query.Start}, nil
	}

	var parsed esSearchResponse
	decoder := json.NewDecoder(res.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	docs := make([]Document, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		doc := hit.Source
		if doc == nil {
			doc = Document{}
		}
		if _, ok := doc["id"]; !ok && hit.ID != "" {
			doc["id"] = hit.ID
		}
		docs = append(docs, doc)
	}

	return &Response{
		Status:   0,
		QTime:    parsed.Took,
		NumFound: parsed.Hits.Total.Value,
		Start:    query.Start,
		Docs:     docs,
	}, nil
}

// Index writes doc under id, replacing any previous version.
func (c *ElasticsearchClient) Index(ctx context.Context, id string, doc Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      c.index,
		DocumentID: id,
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, c.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}
	return nil
}

func buildRequestBody(query *Query) map[string]interface{} {
	filters := make([]interface{}, 0, len(query.FilterQueries))
	for _, fq := range query.FilterQueries {
		filters = append(filters, map[string]interface{}{
			"query_string": map[string]interface{}{"query": fq},
		})
	}

	main := query.Query
	if main == "" {
		main = MatchAllQuery
	}

	body := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []interface{}{
					map[string]interface{}{
						"query_string": map[string]interface{}{"query": main},
					},
				},
				"filter": filters,
			},
		},
		"from":             query.Start,
		"size":             query.Rows,
		"track_total_hits": true,
	}

	if len(query.Sorts) > 0 {
		sorts := make([]interface{}, 0, len(query.Sorts))
		for _, s := range query.Sorts {
			sorts = append(sorts, map[string]interface{}{
				s.Field: map[string]interface{}{"order": string(s.Order)},
			})
		}
		body["sort"] = sorts
	}

	return body
}
