package services

import (
	"context"
	"fmt"

	yt "github.com/kkdai/youtube/v2"

	"github.com/jnt48/R-RoadmapGenerator/internal/models"
)

// MetadataService resolves basic video metadata so the frontend can
// confirm a link before spending a generation call on it.
type MetadataService struct {
	ytClient *yt.Client
}

func NewMetadataService() *MetadataService {
	return &MetadataService{ytClient: &yt.Client{}}
}

func (s *MetadataService) Lookup(ctx context.Context, videoURL string) (*models.VideoInfo, error) {
	videoID, err := ExtractVideoID(videoURL)
	if err != nil {
		return nil, err
	}

	video, err := s.ytClient.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video metadata: %w", err)
	}

	return &models.VideoInfo{
		VideoID:         videoID,
		Title:           video.Title,
		Channel:         video.Author,
		DurationSeconds: int(video.Duration.Seconds()),
	}, nil
}
