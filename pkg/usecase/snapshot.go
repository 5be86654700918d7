package usecase

import (
	"bytes"
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/burndown/pkg/domain/interfaces"
	"github.com/secmon-lab/burndown/pkg/domain/model"
	"github.com/secmon-lab/burndown/pkg/domain/types"
	"github.com/secmon-lab/burndown/pkg/service/surface"
)

// Snapshotter renders print charts to image files outside of any page,
// e.g. for a report posted to Slack.
type Snapshotter struct {
	fetcher   interfaces.Fetcher
	renderer  *Renderer
	location  *time.Location
	publisher interfaces.SnapshotPublisher
}

// NewSnapshotter creates a snapshotter. publisher may be nil when snapshots
// are only written locally.
func NewSnapshotter(fetcher interfaces.Fetcher, renderer *Renderer, loc *time.Location, publisher interfaces.SnapshotPublisher) *Snapshotter {
	if loc == nil {
		loc = time.Local
	}
	return &Snapshotter{
		fetcher:   fetcher,
		renderer:  renderer,
		location:  loc,
		publisher: publisher,
	}
}

// Take loads the milestone in print mode and encodes the chart. A milestone
// without data yields ErrNoDataAvailable; an unreachable or unusable upstream
// yields ErrTransport.
func (s *Snapshotter) Take(ctx context.Context, id types.MilestoneID, format model.ImageFormat, opts ...WidgetOption) (*model.Snapshot, error) {
	if !format.IsValid() {
		return nil, goerr.Wrap(model.ErrInvalidRequest, "unsupported image format", goerr.V("format", format))
	}

	img := surface.NewImage(s.location)
	opts = append([]WidgetOption{WithLocation(s.location)}, opts...)
	widget := NewWidget(id, model.RenderModePrint, s.fetcher, s.renderer, img, img, opts...)
	defer widget.Close()

	if err := widget.Load(ctx); err != nil {
		return nil, err
	}

	switch widget.State() {
	case WidgetStateChart:
	case WidgetStateNoData:
		return nil, goerr.Wrap(model.ErrNoDataAvailable, "nothing to snapshot", goerr.V("milestone", id))
	default:
		return nil, goerr.Wrap(model.ErrTransport, "failed to load burndown", goerr.V("milestone", id))
	}

	var buf bytes.Buffer
	if err := img.Encode(&buf, format); err != nil {
		return nil, err
	}

	snapshot := &model.Snapshot{
		MilestoneID: id,
		Format:      format,
		Data:        buf.Bytes(),
	}
	if p := widget.Payload(); p != nil {
		snapshot.Title = p.MilestoneName
	}

	ctxlog.From(ctx).Debug("snapshot taken",
		"milestone", id,
		"format", format,
		"size", len(snapshot.Data))
	return snapshot, nil
}

// Publish sends a snapshot to the configured publisher
func (s *Snapshotter) Publish(ctx context.Context, snapshot *model.Snapshot) error {
	if s.publisher == nil {
		return goerr.New("no snapshot publisher configured")
	}
	return s.publisher.PublishSnapshot(ctx, snapshot)
}
