package components

import (
	"fmt"

	"github.com/rane05/IELTS-TalkMate/internal/ui/theme"
)

// urgentThreshold is the remaining-seconds mark where the timer turns red.
const urgentThreshold = 10

// RenderTimer formats a countdown as m:ss, highlighted when time is
// nearly up.
func RenderTimer(remaining int) string {
	if remaining < 0 {
		remaining = 0
	}
	text := fmt.Sprintf("⏱ %d:%02d", remaining/60, remaining%60)
	if remaining <= urgentThreshold {
		return theme.TimerUrgent.Render(text)
	}
	return theme.TimerNormal.Render(text)
}
