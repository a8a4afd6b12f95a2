package kwscrape_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/fwojciec/kwscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteText(t *testing.T) {
	t.Parallel()

	t.Run("renders products then the keyword union", func(t *testing.T) {
		t.Parallel()

		r := &kwscrape.Result{
			URL: "https://example.com/",
			Products: []kwscrape.Product{
				{Name: "VPS Hosting", Keywords: []string{"hosting", "vps"}},
				{Name: "Domain Registration", Keywords: []string{"domain", "registration"}},
			},
			Keywords: []string{"domain", "hosting", "registration", "vps"},
		}

		var buf bytes.Buffer
		require.NoError(t, kwscrape.WriteText(&buf, r))

		want := "\n--- 🕵️ Found Products and Their Keywords ---\n\n" +
			"🔹 Product: VPS Hosting\n" +
			"   Keywords: hosting, vps\n\n" +
			"🔹 Product: Domain Registration\n" +
			"   Keywords: domain, registration\n\n" +
			"\n--- 🔑 All Unique Keywords Found ---\n\n" +
			"domain, hosting, registration, vps\n" +
			"\n------------------------------------------\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("reports nothing found for an empty result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, kwscrape.WriteText(&buf, &kwscrape.Result{URL: "https://example.com/"}))

		assert.Equal(t, "\nCould not find any products. The website structure may have changed.\n", buf.String())
	})

	t.Run("treats nil result as empty", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, kwscrape.WriteText(&buf, nil))

		assert.Contains(t, buf.String(), "Could not find any products.")
	})
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes all fields", func(t *testing.T) {
		t.Parallel()

		fetched := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		r := &kwscrape.Result{
			ID:          "run-1",
			URL:         "https://example.com/",
			ContentHash: "0123456789abcdef",
			FetchedAt:   fetched,
			Products:    []kwscrape.Product{{Name: "VPS Hosting", Keywords: []string{"hosting", "vps"}}},
			Keywords:    []string{"hosting", "vps"},
		}

		var buf bytes.Buffer
		require.NoError(t, kwscrape.WriteJSON(&buf, r))

		var got map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "run-1", got["id"])
		assert.Equal(t, "https://example.com/", got["url"])
		assert.Equal(t, "0123456789abcdef", got["contentHash"])
		assert.Equal(t, "2024-03-01T12:00:00Z", got["fetchedAt"])
		assert.Equal(t, []any{"hosting", "vps"}, got["keywords"])
		assert.Equal(t, []any{
			map[string]any{"name": "VPS Hosting", "keywords": []any{"hosting", "vps"}},
		}, got["products"])
	})

	t.Run("writes empty arrays for an empty result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, kwscrape.WriteJSON(&buf, &kwscrape.Result{URL: "https://example.com/"}))

		assert.Contains(t, buf.String(), `"products": []`)
		assert.Contains(t, buf.String(), `"keywords": []`)
		assert.NotContains(t, buf.String(), "contentHash")
	})

	t.Run("indents output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, kwscrape.WriteJSON(&buf, nil))

		assert.Contains(t, buf.String(), "\n  \"id\": \"\"")
	})
}
