//go:build linux

package sound

import (
	"fmt"
	"os/exec"
)

// playSound plays sounds on Linux using paplay (PulseAudio) or aplay (ALSA)
func playSound(name string, volume float64) error {
	// paplay volume range is 0..65536
	paVolume := fmt.Sprintf("%d", int(volume*65536))

	var sounds []struct {
		cmd  string
		args []string
	}

	switch name {
	case "bell":
		sounds = []struct {
			cmd  string
			args []string
		}{
			{"paplay", []string{"--volume", paVolume, "/usr/share/sounds/freedesktop/stereo/bell.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.wav"}},
		}
	case "chime", "ding":
		sounds = []struct {
			cmd  string
			args []string
		}{
			{"paplay", []string{"--volume", paVolume, "/usr/share/sounds/freedesktop/stereo/complete.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.wav"}},
		}
	case "gong":
		sounds = []struct {
			cmd  string
			args []string
		}{
			{"paplay", []string{"--volume", paVolume, "/usr/share/sounds/freedesktop/stereo/message.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/message.wav"}},
		}
	default:
		sounds = []struct {
			cmd  string
			args []string
		}{
			{"paplay", []string{"--volume", paVolume, "/usr/share/sounds/freedesktop/stereo/bell.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.wav"}},
		}
	}

	for _, sound := range sounds {
		cmd := exec.Command(sound.cmd, sound.args...)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
