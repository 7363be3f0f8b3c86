package viewmodel

import "github.com/estantelabs/estante/internal/model"

// ProfileSummary is the read-only panel shown alongside recommendations.
// Genre and level display their raw keys; the fiction type uses its label,
// matching the original interface.
type ProfileSummary struct {
	Name  string
	Genre string
	Type  string
	Level string
}

// NewProfileSummary builds the summary for a submitted profile.
func NewProfileSummary(p model.UserProfile) ProfileSummary {
	return ProfileSummary{
		Name:  p.Name,
		Genre: p.Genre,
		Type:  model.TypeLabel(p.Type),
		Level: p.Level,
	}
}
