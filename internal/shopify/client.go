// Package shopify is the external catalog collaborator: it fetches the shop's
// image file listing and product snapshot. Both fetches are paginated and
// produce finite slices; all reconciliation logic lives elsewhere.
package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"resty.dev/v3"

	"rewindfinds/shopflow/internal/config"
	"rewindfinds/shopflow/internal/models"
)

// pageSize is the catalog page limit; a page with fewer records is the last.
const pageSize = 250

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Client talks to the Shopify admin API for one shop.
type Client struct {
	http       *resty.Client
	shop       string
	apiVersion string
}

// NewClient builds a client from explicit configuration. Credentials are
// request headers; nothing is read from the process environment here.
func NewClient(cfg *config.Config) *Client {
	httpClient := resty.New().
		SetTimeout(60*time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(2*time.Second).
		SetRetryMaxWaitTime(10*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Shopify-Access-Token", cfg.Shopify.Token)

	return &Client{
		http:       httpClient,
		shop:       cfg.Shopify.Shop,
		apiVersion: cfg.Shopify.APIVersion,
	}
}

type productsPage struct {
	Products []models.CatalogProduct `json:"products"`
}

// FetchProducts retrieves the full product snapshot, paging by since_id
// until a page comes back short.
func (c *Client) FetchProducts(ctx context.Context) ([]models.CatalogProduct, error) {
	url := fmt.Sprintf("https://%s/admin/api/%s/products.json", c.shop, c.apiVersion)

	var products []models.CatalogProduct
	sinceID := "0"
	page := 1
	for {
		log.WithField("page", page).Info("Fetching catalog products page")

		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParam("limit", fmt.Sprintf("%d", pageSize)).
			SetQueryParam("since_id", sinceID).
			Get(url)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch products page %d: %w", page, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("catalog API error on products page %d: %d %s", page, resp.StatusCode(), resp.Status())
		}

		var body productsPage
		if err := json.Unmarshal(resp.Bytes(), &body); err != nil {
			return nil, fmt.Errorf("failed to decode products page %d: %w", page, err)
		}

		products = append(products, body.Products...)
		if len(body.Products) < pageSize {
			break
		}
		sinceID = body.Products[len(body.Products)-1].ID.String()
		page++
	}

	log.WithField("count", len(products)).Info("Fetched catalog products")
	return products, nil
}

// filesQuery pages through the shop's media image files.
const filesQuery = `
query getFiles($cursor: String) {
  files(first: 100, after: $cursor) {
    edges {
      node {
        ... on MediaImage {
          id
          image {
            url
            altText
          }
          originalSource { url }
        }
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}
`

type graphqlError struct {
	Message string `json:"message"`
}

type filesResponse struct {
	Errors []graphqlError `json:"errors"`
	Data   struct {
		Files struct {
			Edges []struct {
				Node struct {
					Image struct {
						URL     string `json:"url"`
						AltText string `json:"altText"`
					} `json:"image"`
					OriginalSource struct {
						URL string `json:"url"`
					} `json:"originalSource"`
				} `json:"node"`
			} `json:"edges"`
			PageInfo struct {
				HasNextPage bool   `json:"hasNextPage"`
				EndCursor   string `json:"endCursor"`
			} `json:"pageInfo"`
		} `json:"files"`
	} `json:"data"`
}

// FetchImageFiles retrieves all image file records via the GraphQL files
// endpoint, following the cursor until the end marker.
func (c *Client) FetchImageFiles(ctx context.Context) ([]models.ImageFile, error) {
	url := fmt.Sprintf("https://%s/admin/api/%s/graphql.json", c.shop, c.apiVersion)

	var images []models.ImageFile
	cursor := ""
	for {
		variables := map[string]interface{}{}
		if cursor != "" {
			variables["cursor"] = cursor
		}

		resp, err := c.http.R().
			SetContext(ctx).
			SetBody(map[string]interface{}{
				"query":     filesQuery,
				"variables": variables,
			}).
			Post(url)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch file listing: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("catalog API error on file listing: %d %s", resp.StatusCode(), resp.Status())
		}

		var body filesResponse
		if err := json.Unmarshal(resp.Bytes(), &body); err != nil {
			return nil, fmt.Errorf("failed to decode file listing: %w", err)
		}
		if len(body.Errors) > 0 {
			return nil, fmt.Errorf("catalog GraphQL query failed: %s", body.Errors[0].Message)
		}

		for _, edge := range body.Data.Files.Edges {
			if edge.Node.Image.URL == "" {
				continue
			}
			images = append(images, models.ImageFile{
				URL:            edge.Node.Image.URL,
				AltText:        edge.Node.Image.AltText,
				OriginalSource: edge.Node.OriginalSource.URL,
			})
		}

		if !body.Data.Files.PageInfo.HasNextPage {
			break
		}
		cursor = body.Data.Files.PageInfo.EndCursor
	}

	log.WithField("count", len(images)).Info("Fetched image file listing")
	return images, nil
}
