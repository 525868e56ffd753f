package speech

import (
	"os/exec"
	"runtime"
)

// Speaker reads examiner prompts aloud. Speak is fire-and-forget; playback
// failures never block the session.
type Speaker interface {
	Speak(text string)
	Stop()
}

// speakerTools lists text-to-speech commands in preference order, keyed by
// platform availability rather than configuration.
var speakerTools = []string{"say", "espeak-ng", "espeak", "spd-say"}

// NewSpeaker returns a CommandSpeaker when a text-to-speech tool is
// installed and a NopSpeaker otherwise.
func NewSpeaker() Speaker {
	if runtime.GOOS == "darwin" {
		if _, err := exec.LookPath("say"); err == nil {
			return &CommandSpeaker{tool: "say"}
		}
	}
	for _, tool := range speakerTools {
		if _, err := exec.LookPath(tool); err == nil {
			return &CommandSpeaker{tool: tool}
		}
	}
	return NopSpeaker{}
}

// CommandSpeaker speaks through an external text-to-speech command.
type CommandSpeaker struct {
	tool string
	cmd  *exec.Cmd
}

func (s *CommandSpeaker) Speak(text string) {
	if text == "" {
		return
	}
	s.Stop()
	cmd := exec.Command(s.tool, text)
	if err := cmd.Start(); err != nil {
		return
	}
	s.cmd = cmd
	go cmd.Wait()
}

// Stop interrupts any in-flight utterance.
func (s *CommandSpeaker) Stop() {
	if s.cmd != nil && s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	s.cmd = nil
}

// NopSpeaker silently discards prompts on systems without a speech tool.
type NopSpeaker struct{}

func (NopSpeaker) Speak(string) {}
func (NopSpeaker) Stop()        {}
