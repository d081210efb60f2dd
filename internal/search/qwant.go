package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const (
	searchURL = "https://api.qwant.com/v3/search/images"
	userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:102.0) Gecko/20100101 Firefox/102.0"
)

// ErrNoResults means the provider answered but returned no usable images.
var ErrNoResults = errors.New("no image results")

// QwantFinder looks up images through the Qwant search API.
type QwantFinder struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

// NewQwantFinder creates a new Qwant image finder
func NewQwantFinder(logger *zap.Logger) *QwantFinder {
	return &QwantFinder{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: searchURL,
		logger:  logger,
	}
}

type qwantResponse struct {
	Data struct {
		Result struct {
			Items []struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"items"`
		} `json:"result"`
	} `json:"data"`
}

// FindImage returns the thumbnail URL of a random image matching the phrase.
func (f *QwantFinder) FindImage(ctx context.Context, phrase string) (string, error) {
	f.logger.Info("Searching images", zap.String("query", phrase))

	params := url.Values{
		"count":      {"10"},
		"t":          {"images"},
		"safesearch": {"1"},
		"locale":     {"en_US"},
		"offset":     {"0"},
		"device":     {"desktop"},
		"q":          {phrase},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("qwant: unexpected status %d", resp.StatusCode)
	}

	var body qwantResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("qwant: decode response: %w", err)
	}

	items := body.Data.Result.Items
	if len(items) == 0 {
		return "", ErrNoResults
	}

	thumbnail := items[rand.Intn(len(items))].Thumbnail
	if thumbnail == "" {
		return "", ErrNoResults
	}
	return thumbnail, nil
}
