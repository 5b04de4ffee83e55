package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pokedle/internal/client/display"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Verbose    bool
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) SetVerbose(v bool) {
	c.Verbose = v
}

// SetBaseURL updates the API base URL for the client
func (c *Client) SetBaseURL(url string) {
	c.BaseURL = strings.TrimRight(url, "/")
}

func (c *Client) doRequest(method, path string, body interface{}, result interface{}) error {
	url := c.BaseURL + path

	// Prepare body
	var bodyReader io.Reader
	var bodyStr string
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(jsonData)
		bodyStr = string(jsonData)
	}

	// Create request
	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Display request
	fmt.Printf("\n%s[API] %s %s%s\n", display.Blue, method, path, display.Reset)
	if bodyStr != "" {
		if c.Verbose {
			fmt.Printf("%sRequest Body:%s\n%s\n", display.Cyan, display.Reset, display.IndentRawJSON([]byte(bodyStr)))
		} else {
			fmt.Printf("%s%s%s\n", display.Blue, bodyStr, display.Reset)
		}
	}

	// Execute request
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		fmt.Printf("%s[ERROR] %s%s\n", display.Red, err.Error(), display.Reset)
		return err
	}
	defer resp.Body.Close()

	// Read response
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	// Display response
	statusColor := display.Green
	if resp.StatusCode >= 400 {
		statusColor = display.Red
	}
	fmt.Printf("%s[%d %s]%s\n", statusColor, resp.StatusCode, http.StatusText(resp.StatusCode), display.Reset)

	// Display response body if verbose
	if c.Verbose && len(respBody) > 0 {
		fmt.Printf("%sResponse Body:%s\n%s\n", display.Cyan, display.Reset, display.IndentRawJSON(respBody))
	}

	// Parse error response
	if resp.StatusCode >= 400 {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			if !c.Verbose {
				fmt.Printf("%sError: %s%s\n", display.Red, errResp.Error, display.Reset)
				if errResp.Code != "" {
					fmt.Printf("%sCode: %s%s\n", display.Red, errResp.Code, display.Reset)
				}
				if errResp.Details != "" {
					fmt.Printf("%sDetails: %s%s\n", display.Red, errResp.Details, display.Reset)
				}
			}
		} else if !c.Verbose {
			fmt.Printf("%s%s%s\n", display.Red, string(respBody), display.Reset)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	// Parse success response
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			// For debug, show raw response if parsing fails
			fmt.Printf("%sResponse parse error: %s%s\n", display.Red, err.Error(), display.Reset)
			fmt.Printf("%sRaw response: %s%s\n", display.Green, string(respBody), display.Reset)
			return err
		}
	}

	return nil
}

// API Methods

func (c *Client) Health() (*HealthResponse, error) {
	var resp HealthResponse
	err := c.doRequest("GET", "/health", nil, &resp)
	return &resp, err
}

func (c *Client) GetDaily(date, partition string) (*DailyResponse, error) {
	var resp DailyResponse
	err := c.doRequest("GET", "/api/v1/daily"+dailyQuery(date, partition), nil, &resp)
	return &resp, err
}

func (c *Client) SubmitGuess(req *GuessRequest) (*GuessResponse, error) {
	var resp GuessResponse
	err := c.doRequest("POST", "/api/v1/guesses", req, &resp)
	return &resp, err
}

func (c *Client) SubmitResult(req *ResultRequest) (*ResultResponse, error) {
	var resp ResultResponse
	err := c.doRequest("POST", "/api/v1/results", req, &resp)
	return &resp, err
}

func (c *Client) DailyLeaderboard(gameType, date string) (*LeaderboardResponse, error) {
	var resp LeaderboardResponse
	path := "/api/v1/leaderboard/daily" + leaderboardQuery(gameType, date, 0)
	err := c.doRequest("GET", path, nil, &resp)
	return &resp, err
}

func (c *Client) AllTimeLeaderboard(gameType string, limit int) (*LeaderboardResponse, error) {
	var resp LeaderboardResponse
	path := "/api/v1/leaderboard/alltime" + leaderboardQuery(gameType, "", limit)
	err := c.doRequest("GET", path, nil, &resp)
	return &resp, err
}

func (c *Client) DailyStats(gameType, date string) (*DailyStatsResponse, error) {
	var resp DailyStatsResponse
	path := "/api/v1/stats/daily" + leaderboardQuery(gameType, date, 0)
	err := c.doRequest("GET", path, nil, &resp)
	return &resp, err
}

// RawRequest performs a raw HTTP request for debugging purposes
func (c *Client) RawRequest(method, path string, body string) error {
	var bodyData interface{}
	if body != "" {
		if err := json.Unmarshal([]byte(body), &bodyData); err != nil {
			// Try as raw string
			bodyData = body
		}
	}

	return c.doRequest(method, path, bodyData, nil)
}

func dailyQuery(date, partition string) string {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	if partition != "" {
		q.Set("partition", partition)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func leaderboardQuery(gameType, date string, limit int) string {
	q := url.Values{}
	if gameType != "" {
		q.Set("gameType", gameType)
	}
	if date != "" {
		q.Set("date", date)
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
