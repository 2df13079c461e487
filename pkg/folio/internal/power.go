package internal

import (
	"log/slog"
	"os/exec"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
)

// PowerButtonConfig describes the hardware power button of the kiosk device
// and the actions bound to it. A short press suspends, holding past
// ShortPressMax powers off.
type PowerButtonConfig struct {
	ButtonCode      uint16        // evdev key code (116 = KEY_POWER)
	DevicePath      string        // /dev/input/eventN device exposing the button
	ShortPressMax   time.Duration // Presses at or under this run the suspend script
	CoolDownTime    time.Duration // Ignore further presses for this long after an action
	SuspendScript   string        // Executable run on short press
	ShutdownCommand string        // Executable run on long press
}

// PowerButtonHandler reads the power button device until the passed
// WaitGroup is released (the window does that on close). It is started on
// its own goroutine by the window and must not touch SDL state.
func PowerButtonHandler(wg *sync.WaitGroup, pbc PowerButtonConfig) {
	log := GetInternalLogger()

	device, err := evdev.Open(pbc.DevicePath)
	if err != nil {
		log.Error("Failed to open power button device", "path", pbc.DevicePath, "error", err)
		return
	}

	name, _ := device.Name()
	log.Debug("Power button handler started", "path", pbc.DevicePath, "device", name)

	// Unblock the reader when the window shuts down.
	go func() {
		wg.Wait()
		device.Close()
	}()

	var (
		pressedAt  time.Time
		lastAction time.Time
	)

	for {
		event, err := device.ReadOne()
		if err != nil {
			// Device closed on shutdown or unplugged.
			log.Debug("Power button reader stopped", "error", err)
			return
		}

		if event.Type != evdev.EV_KEY || uint16(event.Code) != pbc.ButtonCode {
			continue
		}

		switch event.Value {
		case 1: // key down
			pressedAt = time.Now()
		case 0: // key up
			if pressedAt.IsZero() {
				continue
			}
			heldFor := time.Since(pressedAt)
			pressedAt = time.Time{}

			if time.Since(lastAction) < pbc.CoolDownTime {
				continue
			}
			lastAction = time.Now()

			if heldFor <= pbc.ShortPressMax {
				runPowerAction(log, "suspend", pbc.SuspendScript)
			} else {
				runPowerAction(log, "shutdown", pbc.ShutdownCommand)
			}
		}
	}
}

func runPowerAction(log *slog.Logger, action, command string) {
	if command == "" {
		return
	}
	log.Info("Power button action", "action", action, "command", command)
	if err := exec.Command(command).Run(); err != nil {
		log.Error("Power button action failed", "action", action, "error", err)
	}
}
