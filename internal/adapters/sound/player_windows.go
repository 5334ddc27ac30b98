//go:build windows

package sound

import "os/exec"

// playSound plays sounds on Windows using PowerShell system sounds
func playSound(name string, volume float64) error {
	var soundCommands []string

	switch name {
	case "bell", "chime":
		soundCommands = []string{
			"[System.Media.SystemSounds]::Asterisk.Play()",
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	case "ding":
		soundCommands = []string{
			"[System.Media.SystemSounds]::Exclamation.Play()",
		}
	case "gong":
		soundCommands = []string{
			"[System.Media.SystemSounds]::Hand.Play()",
		}
	default:
		soundCommands = []string{
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	}

	for _, soundCmd := range soundCommands {
		cmd := exec.Command("powershell", "-NoProfile", "-Command", soundCmd)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
