package helper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"store_backend/constants"
	"store_backend/utils"
)

const rajaongkirBaseURL = "https://api.rajaongkir.com/starter"

// RegionClient calls the rajaongkir province/city reference API with the
// server-held key and unwraps the `{rajaongkir:{results}}` envelope.
type RegionClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewRegionClient(apiKey string) *RegionClient {
	return &RegionClient{
		BaseURL:    rajaongkirBaseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type rajaongkirEnvelope struct {
	Rajaongkir struct {
		Results json.RawMessage `json:"results"`
	} `json:"rajaongkir"`
}

func (rc *RegionClient) Provinces(ctx context.Context) (json.RawMessage, error) {
	return rc.fetch(ctx, rc.BaseURL+"/province")
}

func (rc *RegionClient) Cities(ctx context.Context, province string) (json.RawMessage, error) {
	endpoint := rc.BaseURL + "/city"
	if province != "" {
		endpoint += "?province=" + url.QueryEscape(province)
	}
	return rc.fetch(ctx, endpoint)
}

func (rc *RegionClient) fetch(ctx context.Context, endpoint string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, utils.NewUnexpected(constants.ERROR_INTERNAL_ERROR, err)
	}
	req.Header.Set("key", rc.APIKey)

	resp, err := rc.HTTPClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
			return nil, utils.NewTimeout(constants.ERROR_UPSTREAM_TIMEOUT, err)
		}
		return nil, utils.NewUpstream(constants.ERROR_UPSTREAM, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, utils.NewUpstream(constants.ERROR_UPSTREAM, fmt.Errorf("rajaongkir status %d", resp.StatusCode))
	}

	var envelope rajaongkirEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, utils.NewUpstream(constants.ERROR_UPSTREAM, err)
	}
	if envelope.Rajaongkir.Results == nil {
		return nil, utils.NewUpstream(constants.ERROR_UPSTREAM, errors.New("rajaongkir response missing results"))
	}

	return envelope.Rajaongkir.Results, nil
}
