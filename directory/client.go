// Package directory integrates the external national course directory. Access
// is authorized by an OAuth client-credentials bearer token that the client
// caches until shortly before expiry and refetches on expiry or rejection.
package directory

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// expiryMargin is subtracted from the advertised token lifetime so a token is
// never used in the last moments before the issuer invalidates it.
const expiryMargin = 5 * time.Second

// Course is the normalized shape of a directory course listing
type Course struct {
	Title                         string  `json:"title"`
	ReferenceNumber               string  `json:"referenceNumber"`
	Category                      string  `json:"category"`
	Provider                      string  `json:"provider"`
	Date                          string  `json:"date"`
	Objective                     string  `json:"objective"`
	TotalCostOfTrainingPerTrainee float64 `json:"totalCostOfTrainingPerTrainee"`
	TotalTrainingDurationHour     float64 `json:"totalTrainingDurationHour"`
}

type rawCourse struct {
	Title                         string   `json:"title"`
	ReferenceNumber               string   `json:"referenceNumber"`
	Category                      string   `json:"category"`
	TrainingProviderAlias         string   `json:"trainingProviderAlias"`
	Objective                     string   `json:"objective"`
	TotalCostOfTrainingPerTrainee float64  `json:"totalCostOfTrainingPerTrainee"`
	TotalTrainingDurationHour     float64  `json:"totalTrainingDurationHour"`
	Meta                          struct {
		CreateDate string `json:"createDate"`
	} `json:"meta"`
}

type searchResponse struct {
	Data struct {
		Courses []rawCourse `json:"courses"`
	} `json:"data"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// Config holds the directory endpoints and OAuth credentials
type Config struct {
	TokenURL     string
	APIURL       string
	ClientID     string
	ClientSecret string
}

// Client talks to the course directory. The token cache is owned by the client
// instance and injected wherever needed; it is not a package global.
type Client struct {
	http *resty.Client
	cfg  Config

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func NewClient(cfg Config) *Client {
	return &Client{
		http: resty.New().SetTimeout(15 * time.Second),
		cfg:  cfg,
	}
}

// GetValidToken returns the cached bearer token, fetching a fresh one when the
// cache is empty or expired.
func (c *Client) GetValidToken() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.expiry) {
		return c.token, nil
	}
	return c.fetchTokenLocked()
}

// fetchTokenLocked performs the client-credentials grant. Caller holds c.mu.
func (c *Client) fetchTokenLocked() (string, error) {
	resp, err := c.http.R().
		SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		Post(c.cfg.TokenURL)
	if err != nil {
		return "", fmt.Errorf("directory token request: %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("directory token request failed with status %d", resp.StatusCode())
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(resp.Body(), &tokenResp); err != nil {
		return "", fmt.Errorf("parse directory token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("directory token response missing access_token")
	}

	c.token = tokenResp.AccessToken
	c.expiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn)*time.Second - expiryMargin)
	log.Printf("Directory token refreshed, expires at %s", c.expiry.Format(time.Kitchen))
	return c.token, nil
}

// invalidate drops the cached token so the next call refetches
func (c *Client) invalidate() {
	c.mu.Lock()
	c.token = ""
	c.expiry = time.Time{}
	c.mu.Unlock()
}

// authorized runs the request with a valid bearer token, refetching the token
// and retrying once if the directory rejects it with 401.
func (c *Client) authorized(do func(token string) (*resty.Response, error)) (*resty.Response, error) {
	token, err := c.GetValidToken()
	if err != nil {
		return nil, err
	}

	resp, err := do(token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() == 401 {
		c.invalidate()
		token, err = c.GetValidToken()
		if err != nil {
			return nil, err
		}
		return do(token)
	}
	return resp, nil
}

// SearchCourses queries the directory by keyword with paging
func (c *Client) SearchCourses(keyword string, page int) ([]Course, error) {
	if keyword == "" {
		keyword = "business"
	}
	if page < 1 {
		page = 1
	}

	resp, err := c.authorized(func(token string) (*resty.Response, error) {
		return c.http.R().
			SetAuthToken(token).
			SetHeader("Accept", "application/json").
			SetQueryParams(map[string]string{
				"pageSize":     "12",
				"page":         strconv.Itoa(page),
				"keyword":      keyword,
				"retrieveType": "FULL",
			}).
			Get(c.cfg.APIURL + "/courses/directory")
	})
	if err != nil {
		return nil, fmt.Errorf("directory course search: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("directory course search failed with status %d", resp.StatusCode())
	}

	var searchResp searchResponse
	if err := json.Unmarshal(resp.Body(), &searchResp); err != nil {
		return nil, fmt.Errorf("parse directory course search response: %w", err)
	}

	courses := make([]Course, len(searchResp.Data.Courses))
	for i, raw := range searchResp.Data.Courses {
		date := ""
		if raw.Meta.CreateDate != "" {
			date = raw.Meta.CreateDate
			if idx := len("2006-01-02"); len(date) > idx && date[idx] == 'T' {
				date = date[:idx]
			}
		}
		courses[i] = Course{
			Title:                         raw.Title,
			ReferenceNumber:               raw.ReferenceNumber,
			Category:                      raw.Category,
			Provider:                      raw.TrainingProviderAlias,
			Date:                          date,
			Objective:                     raw.Objective,
			TotalCostOfTrainingPerTrainee: raw.TotalCostOfTrainingPerTrainee,
			TotalTrainingDurationHour:     raw.TotalTrainingDurationHour,
		}
	}
	return courses, nil
}

// CourseTags fetches the directory's tag taxonomy as raw JSON
func (c *Client) CourseTags() (json.RawMessage, error) {
	resp, err := c.authorized(func(token string) (*resty.Response, error) {
		return c.http.R().
			SetAuthToken(token).
			SetHeader("Accept", "application/json").
			SetHeader("API-Version", "v1").
			Get(c.cfg.APIURL + "/courses/tags")
	})
	if err != nil {
		return nil, fmt.Errorf("directory course tags: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("directory course tags failed with status %d", resp.StatusCode())
	}
	return json.RawMessage(resp.Body()), nil
}
