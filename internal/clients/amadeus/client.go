package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	tokenPath         = "/v1/security/oauth2/token"
	hotelOffersPath   = "/v2/shopping/hotel-offers"
	defaultTokenTTL   = 1800 * time.Second
	tokenExpiryMargin = 60 * time.Second
	placeholderAPIKey = "YOUR_API_KEY"
)

// Client talks to the Amadeus self-service API. The access token is cached
// until shortly before it expires.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	now        func() time.Time

	mu      sync.Mutex
	token   string
	expires time.Time
}

func NewClient(baseURL, apiKey, apiSecret string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

// Configured reports whether real credentials were supplied.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.apiSecret != "" && c.apiKey != placeholderAPIKey
}

// APIError is returned for non-2xx upstream responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("amadeus: status %d: %s", e.StatusCode, e.Body)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// AccessToken returns the cached token or fetches a new one with the
// client-credentials grant.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expires) {
		return c.token, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.apiKey},
		"client_secret": {c.apiSecret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("amadeus: build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var tr tokenResponse
	if err := c.do(req, &tr); err != nil {
		return "", err
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("amadeus: empty access token")
	}

	ttl := defaultTokenTTL
	if tr.ExpiresIn > 0 {
		ttl = time.Duration(tr.ExpiresIn) * time.Second
	}
	c.token = tr.AccessToken
	c.expires = c.now().Add(ttl - tokenExpiryMargin)
	return c.token, nil
}

type SearchParams struct {
	CityCode string
	CheckIn  string
	CheckOut string
	Radius   int
	Language string
	Max      int
}

type HotelOffersResponse struct {
	Data []HotelOffer `json:"data"`
}

// HotelOffer accepts both the flat and the nested ("hotel") layouts.
type HotelOffer struct {
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name,omitempty"`
	Address     *Address     `json:"address,omitempty"`
	Hotel       *HotelInfo   `json:"hotel,omitempty"`
	Offers      []Offer      `json:"offers,omitempty"`
	Description *Description `json:"description,omitempty"`
}

type HotelInfo struct {
	HotelID     string       `json:"hotelId"`
	Name        string       `json:"name"`
	CityCode    string       `json:"cityCode"`
	Address     *Address     `json:"address,omitempty"`
	Description *Description `json:"description,omitempty"`
}

type Address struct {
	CityName    string `json:"cityName"`
	CountryCode string `json:"countryCode"`
}

type Offer struct {
	ID    string `json:"id"`
	Price Price  `json:"price"`
}

type Price struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
}

type Description struct {
	Text string `json:"text"`
}

func (c *Client) SearchHotelOffers(ctx context.Context, p SearchParams) (*HotelOffersResponse, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("cityCode", p.CityCode)
	q.Set("checkInDate", p.CheckIn)
	if p.CheckOut != "" {
		q.Set("checkOutDate", p.CheckOut)
	}
	q.Set("radius", strconv.Itoa(p.Radius))
	q.Set("radiusUnit", "KM")
	q.Set("max", strconv.Itoa(p.Max))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+hotelOffersPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("amadeus: build search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Language", p.Language)

	var out HotelOffersResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(req *http.Request, dst any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("amadeus: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("amadeus: read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("amadeus: decode response: %w", err)
	}
	return nil
}
