package services

import (
	"fmt"
	"regexp"
	"strings"

	ytapi "github.com/hightemp/youtube-transcript-api-go/api"
)

// videoIDPattern matches the canonical 11-character video id right
// after a "v=" query parameter or a path separator.
var videoIDPattern = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`)

type YouTubeService struct {
	transcriptAPI *ytapi.YouTubeTranscriptApi
}

func NewYouTubeService() *YouTubeService {
	return &YouTubeService{
		transcriptAPI: ytapi.NewYouTubeTranscriptApi(),
	}
}

// ExtractVideoID pulls the video id out of a watch, share, or embed
// URL. The id is always derived from the URL, never taken verbatim
// from the caller.
func ExtractVideoID(videoURL string) (string, error) {
	m := videoIDPattern.FindStringSubmatch(videoURL)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, videoURL)
	}
	return m[1], nil
}

// ResolveTranscript fetches the captions for a video URL in the
// requested language and flattens them into one space-joined string.
// One fetch attempt only; every provider-side failure (network, no
// captions, wrong language) collapses into ErrTranscriptUnavailable.
func (s *YouTubeService) ResolveTranscript(videoURL, language string) (string, error) {
	videoID, err := ExtractVideoID(videoURL)
	if err != nil {
		return "", err
	}

	if language == "" {
		language = "en"
	}

	transcript, err := s.transcriptAPI.GetTranscript(videoID, []string{language})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscriptUnavailable, err)
	}

	texts := make([]string, 0, len(transcript.Entries))
	for _, entry := range transcript.Entries {
		texts = append(texts, entry.Text)
	}

	text := joinEntryTexts(texts)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: caption track resolved to empty text", ErrTranscriptUnavailable)
	}

	return text, nil
}

// joinEntryTexts concatenates caption texts with single spaces,
// preserving entry order.
func joinEntryTexts(texts []string) string {
	return strings.Join(texts, " ")
}
