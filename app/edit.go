package app

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/deepwork/internal/osutil"
)

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	cfg, err := getConfig(ctx)
	if err != nil {
		return err
	}

	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, cfg.PathToConfig)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}
