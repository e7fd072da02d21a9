package nyt

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureJSON = `{
	"date": "2024-03-01",
	"dictionary": ["OKRA", "ADJECTIVAL"],
	"editor": "Sam Ezersky",
	"editorImage": "",
	"expiration": 0,
	"id": 1234,
	"isFree": true,
	"ourSolution": ["OKRA", "ADJECTIVAL"],
	"par": 5,
	"printDate": "2024-03-01",
	"sides": ["DKI", "JTA", "CLV", "ERO"],
	"yesterdaysSides": ["ABC", "DEF", "GHI", "JKL"],
	"yesterdaysSolution": []
}`

func pageWith(script string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><head>
<script type="text/javascript">%s</script>
</head><body><div id="app"></div></body></html>`, script)
	}
}

func TestFetchParsesGameData(t *testing.T) {
	ts := httptest.NewServer(pageWith("window.gameData = " + fixtureJSON))
	defer ts.Close()

	c := NewClient(ts.URL)
	gd, err := c.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01", gd.PrintDate)
	assert.Equal(t, 5, gd.Par)
	assert.Equal(t, [4]string{"DKI", "JTA", "CLV", "ERO"}, gd.Sides)
	assert.Equal(t, []string{"OKRA", "ADJECTIVAL"}, gd.OurSolution)

	sides, err := gd.TodaySides()
	require.NoError(t, err)
	assert.Equal(t, 12, sides.LetterCount())

	ySides, err := gd.YesterdaySides()
	require.NoError(t, err)
	assert.Equal(t, 12, ySides.LetterCount())
}

func TestFetchUsesCache(t *testing.T) {
	hits := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		pageWith("window.gameData = " + fixtureJSON)(w, r)
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	_, err := c.Fetch(context.Background())
	require.NoError(t, err)
	_, err = c.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, hits)
}

func TestFetchNoGameDataScript(t *testing.T) {
	ts := httptest.NewServer(pageWith("var somethingElse = 1;"))
	defer ts.Close()

	_, err := NewClient(ts.URL).Fetch(context.Background())
	assert.Error(t, err)
}

func TestFetchBadJSON(t *testing.T) {
	ts := httptest.NewServer(pageWith("window.gameData = {nope"))
	defer ts.Close()

	_, err := NewClient(ts.URL).Fetch(context.Background())
	assert.Error(t, err)
}

func TestFetchServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL).Fetch(context.Background())
	assert.Error(t, err)
}

func TestMalformedSidesRecord(t *testing.T) {
	ts := httptest.NewServer(pageWith(`window.gameData = {"printDate":"2024-03-01","sides":["DK","JTA","CLV","ERO"],"yesterdaysSides":["ABC","DEF","GHI","JKL"]}`))
	defer ts.Close()

	gd, err := NewClient(ts.URL).Fetch(context.Background())
	require.NoError(t, err)

	_, err = gd.TodaySides()
	assert.Error(t, err)

	_, err = gd.YesterdaySides()
	assert.NoError(t, err)
}
