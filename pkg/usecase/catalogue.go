package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
)

// LoadCatalogue fetches the technique catalogue from the given URL and
// swaps it in. On failure the previously loaded catalogue is kept and the
// error is returned as a notice for the caller to surface; a fetch failure
// never clears data.
func (uc *UseCases) LoadCatalogue(ctx context.Context, url string) (int, error) {
	techniques, err := uc.fetcher.Fetch(ctx, url)
	if err != nil {
		logging.From(ctx).Warn("catalogue fetch failed, keeping previous catalogue",
			"url", url, "error", err)
		return 0, goerr.Wrap(err, "failed to load technique catalogue", goerr.V("url", url))
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.catalogue = techniques
	return len(techniques), nil
}

// Catalogue returns clones of the loaded techniques, empty until a
// catalogue has been loaded.
func (uc *UseCases) Catalogue() []*model.Technique {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]*model.Technique, 0, len(uc.catalogue))
	for _, t := range uc.catalogue {
		out = append(out, t.Clone())
	}
	return out
}
