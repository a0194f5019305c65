//go:build integration

package rod_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/vocabcsv/goquery"
	"github.com/fwojciec/vocabcsv/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Integration_FlyerVocabularyPage(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(30 * time.Second))
	require.NoError(t, err)
	defer fetcher.Close()

	html, err := fetcher.Fetch(ctx, "https://flyer.vn/1000-tu-vung-ielts-theo-chu-de-xa-hoi-quan-tam/")
	require.NoError(t, err)

	doc, err := goquery.NewParser().Parse(html)
	require.NoError(t, err)
	assert.Positive(t, doc.Count(), "expected vocabulary categories on the page")

	c, err := doc.Category(0)
	require.NoError(t, err)
	assert.NotEmpty(t, c.Identifier)
	assert.NotEmpty(t, c.Entries)

	t.Logf("Fetched %d bytes, %d categories", len(html), doc.Count())
}
