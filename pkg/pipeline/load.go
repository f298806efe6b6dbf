package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/sankeyflow/pkg/cache"
	"github.com/matzehuels/sankeyflow/pkg/diagram"
	"github.com/matzehuels/sankeyflow/pkg/errors"
	"github.com/matzehuels/sankeyflow/pkg/flow"
	"github.com/matzehuels/sankeyflow/pkg/flow/transform"
	"github.com/matzehuels/sankeyflow/pkg/observability"
)

// idLength is how many hex digits of the dataset hash name a diagram.
const idLength = 12

// Load validates the dataset and returns its graph with layers assigned.
func Load(ctx context.Context, opts Options) (*flow.Graph, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Source)
	start := time.Now()

	g, err := opts.Dataset.Graph()
	hooks.OnLoadComplete(ctx, opts.Source, len(opts.Dataset.Nodes), len(opts.Dataset.Links), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	transform.AssignLayers(g)
	return g, nil
}

// DatasetHash returns the content hash of the dataset.
func DatasetHash(opts Options) (string, error) {
	h, err := cache.HashJSON(opts.Dataset)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash dataset")
	}
	return h, nil
}

// NewDiagram builds a diagram instance from opts, loads the dataset into it
// and applies the requested view.
func NewDiagram(ctx context.Context, opts Options) (*diagram.Diagram, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	d := diagram.New(opts.DiagramConfig(), opts.diagramOptions()...)
	if err := d.Load(ctx, opts.Source, opts.Dataset); err != nil {
		return nil, err
	}
	d.SetView(opts.View)
	return d, nil
}

// diagramFromGraph lays out a graph that [Load] already validated. The
// diagram starts at the identity view and takes ownership of g.
func diagramFromGraph(ctx context.Context, g *flow.Graph, opts Options) (*diagram.Diagram, error) {
	d := diagram.New(opts.DiagramConfig(), opts.diagramOptions()...)
	if err := d.LoadGraph(ctx, g); err != nil {
		return nil, err
	}
	return d, nil
}

func (o *Options) diagramOptions() []diagram.Option {
	dopts := []diagram.Option{diagram.WithLogger(o.Logger)}
	if o.ID != "" {
		dopts = append(dopts, diagram.WithID(o.ID))
	}
	return dopts
}

// diagramID derives a stable diagram id from a dataset hash.
func diagramID(datasetHash string) string {
	if len(datasetHash) > idLength {
		return datasetHash[:idLength]
	}
	return datasetHash
}
