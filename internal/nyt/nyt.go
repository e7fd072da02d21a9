// internal/nyt/nyt.go
//
// Puzzle provider for the daily Letter Boxed configuration.
// The New York Times puzzle page inlines a script of the form
//
//	window.gameData = {...}
//
// whose JSON object carries today's and yesterday's sides plus metadata
// (par, editor, expiration, the paper's own solution). This package fetches
// the page, scrapes that script out, and decodes the record.
//
// Notes:
//   - The fetched record is cached until its expiration timestamp, so
//     repeated solves within a day hit the page once.
//   - The page URL is overridable (NYT_URL / NewClient argument), which is
//     how tests point the client at a local fixture server.
package nyt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/OmerAvital/letter-boxed-bot/internal/puzzle"
)

const (
	defaultURL     = "https://www.nytimes.com/puzzles/letter-boxed"
	gameDataMarker = "window.gameData"
)

// GameData mirrors the inline puzzle record on the page. Field tags follow
// the page's JSON keys.
type GameData struct {
	Date               string    `json:"date"`
	Dictionary         []string  `json:"dictionary"`
	Editor             string    `json:"editor"`
	EditorImage        string    `json:"editorImage"`
	Expiration         int64     `json:"expiration"`
	ID                 int       `json:"id"`
	IsFree             bool      `json:"isFree"`
	OurSolution        []string  `json:"ourSolution"`
	Par                int       `json:"par"`
	PrintDate          string    `json:"printDate"`
	Sides              [4]string `json:"sides"`
	YesterdaysSides    [4]string `json:"yesterdaysSides"`
	YesterdaysSolution []string  `json:"yesterdaysSolution"`
}

// TodaySides builds the board for today's puzzle.
func (gd *GameData) TodaySides() (*puzzle.Sides, error) {
	return puzzle.FromStrings(gd.Sides)
}

// YesterdaySides builds the board for yesterday's puzzle.
func (gd *GameData) YesterdaySides() (*puzzle.Sides, error) {
	return puzzle.FromStrings(gd.YesterdaysSides)
}

// Client scrapes the puzzle page.
type Client struct {
	url  string
	http *http.Client

	mu     sync.Mutex // guards cached
	cached *GameData
}

// NewClient builds a Client for url; an empty url means the real page.
func NewClient(url string) *Client {
	if url == "" {
		url = defaultURL
	}
	return &Client{url: url, http: &http.Client{Timeout: 20 * time.Second}}
}

// Fetch returns the current puzzle record, served from cache while the
// cached record has not expired.
func (c *Client) Fetch(ctx context.Context) (*GameData, error) {
	c.mu.Lock()
	if gd := c.cached; gd != nil && (gd.Expiration == 0 || time.Now().Unix() < gd.Expiration) {
		c.mu.Unlock()
		return gd, nil
	}
	c.mu.Unlock()

	gd, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cached = gd
	c.mu.Unlock()
	return gd, nil
}

func (c *Client) fetch(ctx context.Context) (*GameData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch puzzle page: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch puzzle page: status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("parse puzzle page: %w", err)
	}
	return extractGameData(doc)
}

// extractGameData finds the inline script carrying the puzzle JSON and
// decodes everything after the assignment. A trailing semicolon or extra
// script text after the object is tolerated.
func extractGameData(doc *goquery.Document) (*GameData, error) {
	var (
		gd       *GameData
		parseErr error
	)
	doc.Find("script").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := sel.Text()
		idx := strings.Index(text, gameDataMarker)
		if idx < 0 {
			return true
		}
		raw := text[idx+len(gameDataMarker):]
		eq := strings.Index(raw, "=")
		if eq < 0 {
			return true
		}
		var data GameData
		if err := json.NewDecoder(strings.NewReader(raw[eq+1:])).Decode(&data); err != nil {
			parseErr = fmt.Errorf("decode game data: %w", err)
			return false
		}
		gd = &data
		return false
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if gd == nil {
		return nil, errors.New("no game data script on page")
	}
	return gd, nil
}
