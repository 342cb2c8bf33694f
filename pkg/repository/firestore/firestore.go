package firestore

import (
	"context"
	"encoding/json"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
)

// Client is the Firestore-backed persistence gateway. Each analysis is one
// document carrying the portable JSON payload verbatim, ordered by an
// explicit rank field; the selected-analysis pointer lives in a separate
// state document so it can be written best-effort without touching the list.
type Client struct {
	client           *firestore.Client
	collectionPrefix string
}

var _ interfaces.Repository = &Client{}

type Option func(*Client)

// WithCollectionPrefix prefixes all collection names, so several deployments
// can share one database.
func WithCollectionPrefix(prefix string) Option {
	return func(c *Client) {
		c.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Client, error) {
	var fsClient *firestore.Client
	var err error
	if databaseID != "" {
		fsClient, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		fsClient, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	c := &Client{client: fsClient}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) analysesCollection() string {
	if c.collectionPrefix != "" {
		return c.collectionPrefix + "_analyses"
	}
	return "analyses"
}

func (c *Client) stateCollection() string {
	if c.collectionPrefix != "" {
		return c.collectionPrefix + "_state"
	}
	return "state"
}

const selectionDoc = "selection"

type analysisDoc struct {
	ID      string `firestore:"id"`
	Title   string `firestore:"title"`
	Rank    int    `firestore:"rank"`
	Payload string `firestore:"payload"`
}

type selectionState struct {
	AnalysisID string `firestore:"analysis_id"`
}

func (c *Client) LoadAnalyses(ctx context.Context) ([]*model.Analysis, error) {
	iter := c.client.Collection(c.analysesCollection()).OrderBy("rank", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var analyses []*model.Analysis
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate analyses")
		}

		var doc analysisDoc
		if err := snap.DataTo(&doc); err != nil {
			logging.From(ctx).Warn("skipping corrupt analysis document",
				"doc", snap.Ref.ID, "error", err)
			continue
		}

		var a model.Analysis
		if err := json.Unmarshal([]byte(doc.Payload), &a); err != nil {
			logging.From(ctx).Warn("skipping unparsable analysis payload",
				"doc", snap.Ref.ID, "error", err)
			continue
		}
		analyses = append(analyses, &a)
	}

	return analyses, nil
}

func (c *Client) SaveAnalyses(ctx context.Context, analyses []*model.Analysis) error {
	col := c.client.Collection(c.analysesCollection())

	keep := make(map[string]bool, len(analyses))
	for rank, a := range analyses {
		payload, err := json.Marshal(a)
		if err != nil {
			return goerr.Wrap(err, "failed to serialize analysis", goerr.V("id", a.ID))
		}
		doc := analysisDoc{
			ID:      a.ID.String(),
			Title:   a.Title,
			Rank:    rank,
			Payload: string(payload),
		}
		if _, err := col.Doc(a.ID.String()).Set(ctx, doc); err != nil {
			return goerr.Wrap(err, "failed to save analysis", goerr.V("id", a.ID))
		}
		keep[a.ID.String()] = true
	}

	// Remove documents of deleted analyses
	iter := col.Documents(ctx)
	defer iter.Stop()
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to list analyses for pruning")
		}
		if keep[snap.Ref.ID] {
			continue
		}
		if _, err := snap.Ref.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete stale analysis", goerr.V("doc", snap.Ref.ID))
		}
	}

	return nil
}

func (c *Client) GetSelectedID(ctx context.Context) (types.AnalysisID, error) {
	snap, err := c.client.Collection(c.stateCollection()).Doc(selectionDoc).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", nil
		}
		return "", goerr.Wrap(err, "failed to get selection state")
	}

	var state selectionState
	if err := snap.DataTo(&state); err != nil {
		return "", goerr.Wrap(err, "failed to decode selection state")
	}
	return types.AnalysisID(state.AnalysisID), nil
}

func (c *Client) SetSelectedID(ctx context.Context, id types.AnalysisID) error {
	_, err := c.client.Collection(c.stateCollection()).Doc(selectionDoc).Set(ctx, selectionState{
		AnalysisID: id.String(),
	})
	if err != nil {
		return goerr.Wrap(err, "failed to save selection state", goerr.V("id", id))
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
