package slack

import (
	"bytes"
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/burndown/pkg/domain/interfaces"
	"github.com/secmon-lab/burndown/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Service publishes chart snapshots to a Slack channel
type Service struct {
	client  *slack.Client
	channel string
}

var _ interfaces.SnapshotPublisher = (*Service)(nil)

// New creates a new Slack service posting to channelID
func New(token, channelID string, options ...slack.Option) (*Service, error) {
	if token == "" {
		return nil, goerr.New("slack OAuth token is required")
	}
	if channelID == "" {
		return nil, goerr.New("slack channel is required")
	}

	return &Service{
		client:  slack.New(token, options...),
		channel: channelID,
	}, nil
}

// PublishSnapshot uploads a rendered chart to the channel
func (s *Service) PublishSnapshot(ctx context.Context, snapshot *model.Snapshot) error {
	if len(snapshot.Data) == 0 {
		return goerr.New("snapshot is empty", goerr.V("milestone", snapshot.MilestoneID))
	}

	title := snapshot.Title
	if title == "" {
		title = snapshot.MilestoneID.String()
	}

	file, err := s.client.UploadFileV2Context(ctx, slack.UploadFileV2Parameters{
		Reader:         bytes.NewReader(snapshot.Data),
		FileSize:       len(snapshot.Data),
		Filename:       snapshot.Filename(),
		Title:          fmt.Sprintf("Burndown: %s", title),
		InitialComment: fmt.Sprintf("Burndown chart of milestone *%s*", title),
		Channel:        s.channel,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to upload snapshot to Slack",
			goerr.V("milestone", snapshot.MilestoneID),
			goerr.V("channel", s.channel))
	}

	ctxlog.From(ctx).Info("snapshot published to Slack",
		"milestone", snapshot.MilestoneID,
		"channel", s.channel,
		"file_id", file.ID)
	return nil
}
