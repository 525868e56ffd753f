// Package speech provides microphone capture and text-to-speech playback
// by shelling out to standard audio tools. Both sides degrade gracefully
// when no tool is installed.
package speech

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
)

// ErrNoRecorder is returned when no supported capture tool is installed.
var ErrNoRecorder = errors.New("no audio recorder found (install sox or alsa-utils)")

// ErrNotRecording is returned by Stop when no capture is in progress.
var ErrNotRecording = errors.New("not recording")

// Recorder captures microphone audio between Start and Stop.
type Recorder interface {
	// Start begins capturing. Only one capture may run at a time.
	Start() error

	// Stop ends the capture and returns the recorded WAV payload.
	Stop() ([]byte, error)

	// Recording reports whether a capture is in progress.
	Recording() bool
}

// recorderTools lists capture commands in preference order with the
// arguments that produce 16 kHz mono WAV, the format the evaluation
// services expect. The output path is appended at spawn time.
var recorderTools = []struct {
	name string
	args []string
}{
	{"rec", []string{"-q", "-r", "16000", "-c", "1"}},
	{"sox", []string{"-q", "-t", "alsa", "default", "-r", "16000", "-c", "1"}},
	{"arecord", []string{"-q", "-f", "S16_LE", "-r", "16000", "-c", "1", "-t", "wav"}},
}

// CommandRecorder records via the first available capture tool.
type CommandRecorder struct {
	mu   sync.Mutex
	cmd  *exec.Cmd
	path string
}

// NewCommandRecorder probes for a capture tool and returns ErrNoRecorder
// if none is installed.
func NewCommandRecorder() (*CommandRecorder, error) {
	for _, tool := range recorderTools {
		if _, err := exec.LookPath(tool.name); err == nil {
			return &CommandRecorder{}, nil
		}
	}
	return nil, ErrNoRecorder
}

func (r *CommandRecorder) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cmd != nil {
		return fmt.Errorf("recording already in progress")
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("talkmate-%s.wav", uuid.NewString()))

	for _, tool := range recorderTools {
		if _, err := exec.LookPath(tool.name); err != nil {
			continue
		}
		args := append(append([]string{}, tool.args...), path)
		cmd := exec.Command(tool.name, args...)
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("starting %s: %w", tool.name, err)
		}
		r.cmd = cmd
		r.path = path
		return nil
	}
	return ErrNoRecorder
}

func (r *CommandRecorder) Stop() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cmd == nil {
		return nil, ErrNotRecording
	}
	cmd, path := r.cmd, r.path
	r.cmd = nil
	r.path = ""
	defer os.Remove(path)

	// SIGINT lets the tool finalize the WAV header before exiting.
	if err := cmd.Process.Signal(syscall.SIGINT); err != nil {
		cmd.Process.Kill()
	}
	cmd.Wait()

	// The tool may flush asynchronously after exit.
	var data []byte
	var err error
	for range 5 {
		data, err = os.ReadFile(path)
		if err == nil && len(data) > 0 {
			return data, nil
		}
		time.Sleep(50 * time.Millisecond)
	}
	if err != nil {
		return nil, fmt.Errorf("reading recording: %w", err)
	}
	return nil, fmt.Errorf("recording is empty")
}

func (r *CommandRecorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cmd != nil
}
