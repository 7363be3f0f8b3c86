package components

import "github.com/estantelabs/estante/internal/model"

// ProfileSubmitMsg is emitted by the profile form once its fields pass
// validation. The coordinator reacts by requesting recommendations.
type ProfileSubmitMsg struct {
	Profile model.UserProfile
}
