package terminal

import (
	"errors"
	"os"
	"os/exec"

	"github.com/mattn/go-isatty"
)

// relaunchEnv marks a child started by Relaunch so it never relaunches again.
const relaunchEnv = "MOTORCALC_RELAUNCHED"

// ErrNoEmulator means no known terminal emulator was found on PATH.
var ErrNoEmulator = errors.New("no usable terminal emulator found")

// emulators in preference order. The trailing flag introduces the command
// to execute inside the emulator.
var emulators = [][]string{
	{"x-terminal-emulator", "--title=MotorCalc", "-x"},
	{"gnome-terminal", "-t", "MotorCalc", "--"},
	{"konsole", "-p", "tabtitle=MotorCalc", "-e"},
	{"xfce4-terminal", "-T=MotorCalc", "-x"},
	{"xterm", "-T", "MotorCalc", "-e"},
}

// IsInteractive reports whether both stdin and stdout are attached to a
// terminal.
func IsInteractive() bool {
	return isTerm(os.Stdin.Fd()) && isTerm(os.Stdout.Fd())
}

func isTerm(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Relaunched reports whether this process was started by Relaunch.
func Relaunched() bool {
	return os.Getenv(relaunchEnv) != ""
}

// Relaunch re-executes this program inside the first terminal emulator found
// on PATH and waits for it to exit. Used when the program was started
// outside a terminal, e.g. from a desktop launcher.
func Relaunch() error {
	self, err := os.Executable()
	if err != nil {
		return err
	}

	for _, em := range emulators {
		if _, err := exec.LookPath(em[0]); err != nil {
			continue
		}

		args := append(append([]string{}, em[1:]...), self)
		cmd := exec.Command(em[0], args...)
		cmd.Env = append(os.Environ(), relaunchEnv+"=1")
		return cmd.Run()
	}

	return ErrNoEmulator
}
