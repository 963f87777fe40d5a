package enrich

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"

	"recipeconv/internal/imagesearch"
	"recipeconv/internal/imaging"
	"recipeconv/internal/mela"
)

// Searcher finds and downloads one image for a query.
type Searcher interface {
	SearchImage(ctx context.Context, query string) (*imagesearch.Result, error)
	Download(ctx context.Context, imageURL string) ([]byte, error)
}

// Cache stores image bytes between runs. A nil Cache disables caching.
type Cache interface {
	Get(ctx context.Context, query string) ([]byte, bool, error)
	Put(ctx context.Context, query string, data []byte) error
}

// Options configure an enrichment pass.
type Options struct {
	// ScaleWidth bounds embedded image width; zero embeds images as
	// downloaded.
	ScaleWidth int
	Logger     *slog.Logger
}

// AddImages fills in an image for every recipe in recipes that has none,
// searching by recipe title. Recipes are updated in place. Returns the
// number of recipes that received an image.
func AddImages(ctx context.Context, recipes []mela.Recipe, searcher Searcher, cache Cache, opts Options) int {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	enriched := 0
	for i := range recipes {
		recipe := &recipes[i]
		if len(recipe.Images) > 0 {
			logger.Info("image already present", "title", recipe.Title)
			continue
		}
		data, ok := fetchImage(ctx, recipe.Title, searcher, cache, logger)
		if !ok {
			continue
		}
		if opts.ScaleWidth > 0 {
			scaled, err := imaging.ScaleDown(data, imaging.Options{MaxWidth: opts.ScaleWidth})
			if err != nil {
				logger.Warn("scale image failed, embedding original", "title", recipe.Title, "error", err)
			} else {
				data = scaled
			}
		}
		recipe.Images = append(recipe.Images, base64.StdEncoding.EncodeToString(data))
		enriched++
	}
	return enriched
}

// fetchImage returns image bytes for query, consulting the cache before the
// network and caching fresh downloads.
func fetchImage(ctx context.Context, query string, searcher Searcher, cache Cache, logger *slog.Logger) ([]byte, bool) {
	if cache != nil {
		data, found, err := cache.Get(ctx, query)
		if err != nil {
			logger.Warn("cache lookup failed", "title", query, "error", err)
		} else if found {
			logger.Debug("image served from cache", "title", query)
			return data, true
		}
	}

	logger.Info("searching for image", "title", query)
	result, err := searcher.SearchImage(ctx, query)
	if err != nil {
		if errors.Is(err, imagesearch.ErrNoResults) {
			logger.Warn("no images found", "title", query)
		} else {
			logger.Error("image search failed", "title", query, "error", err)
		}
		return nil, false
	}

	logger.Info("downloading image", "title", query, "url", result.Image)
	data, err := searcher.Download(ctx, result.Image)
	if err != nil {
		logger.Error("image download failed", "title", query, "error", err)
		return nil, false
	}

	if cache != nil {
		if err := cache.Put(ctx, query, data); err != nil {
			logger.Warn("cache store failed", "title", query, "error", err)
		}
	}
	return data, true
}
