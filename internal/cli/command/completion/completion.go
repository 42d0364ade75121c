package completion

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/admisiones-iti/admisiones/internal/config"
	"github.com/admisiones-iti/admisiones/internal/i18n"
	"github.com/admisiones-iti/admisiones/internal/ui"
	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `#! /bin/bash

_admisiones_bash_autocomplete() {
  if [[ "${COMP_WORDS[0]}" != "source" ]]; then
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"

    # Everything before the word under the cursor is the context urfave/cli completes from
    local cmd_context=("${COMP_WORDS[@]:0:$COMP_CWORD}")
    opts=$( "${cmd_context[@]}" --generate-shell-completion )

    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
  fi
}

complete -o bashdefault -o default -o nospace -F _admisiones_bash_autocomplete admisiones
`

const zshCompletionScript = `#compdef admisiones

_admisiones() {
  local -a opts
  local cmd_context=("${(@)words[1,$CURRENT-1]}")
  opts=("${(@f)$("${cmd_context[@]}" --generate-shell-completion)}")
  _describe 'values' opts
}

compdef _admisiones admisiones
`

const installMarker = "# Admisiones Shell Completion"

const installInfo = `
` + installMarker + `
if command -v admisiones >/dev/null 2>&1; then
	source <(admisiones completion %s)
fi
`

type CompletionCommandFactory struct {
	out io.Writer
}

func NewCompletionCommandFactory() *CompletionCommandFactory {
	return &CompletionCommandFactory{out: os.Stdout}
}

func (f *CompletionCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "completion",
		Usage:       t.GetMessage("completion.command_usage", 0, nil),
		Description: t.GetMessage("completion.command_description", 0, nil),
		Commands: []*cli.Command{
			{
				Name:  "bash",
				Usage: t.GetMessage("completion.bash_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprint(f.out, bashCompletionScript)
					return err
				},
			},
			{
				Name:  "zsh",
				Usage: t.GetMessage("completion.zsh_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprint(f.out, zshCompletionScript)
					return err
				},
			},
			{
				Name:  "install",
				Usage: t.GetMessage("completion.install_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return f.install(t)
				},
			},
		},
	}
}

// install appends the source line to the rc file of the current shell once.
func (f *CompletionCommandFactory) install(t *i18n.Translations) error {
	shell := os.Getenv("SHELL")
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("%s", t.GetMessage("completion.error_home_dir", 0, map[string]interface{}{"Error": err.Error()}))
	}

	var configFile, shellName string
	switch {
	case strings.Contains(shell, "zsh"):
		configFile = filepath.Join(home, ".zshrc")
		shellName = "zsh"
	case strings.Contains(shell, "bash"):
		configFile = filepath.Join(home, ".bashrc")
		shellName = "bash"
	default:
		return fmt.Errorf("%s", t.GetMessage("completion.error_unsupported_shell", 0, map[string]interface{}{"Shell": shell}))
	}

	fileContent, err := os.ReadFile(configFile)
	if err == nil && strings.Contains(string(fileContent), installMarker) {
		ui.PrintInfo(f.out, t.GetMessage("completion.already_installed", 0, map[string]interface{}{"File": configFile}))
		f.printRestart(t, configFile)
		return nil
	}

	file, err := os.OpenFile(configFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("%s", t.GetMessage("completion.error_open_config", 0, map[string]interface{}{"Error": err.Error()}))
	}
	defer func() {
		_ = file.Close()
	}()

	if _, err := file.WriteString(fmt.Sprintf(installInfo, shellName)); err != nil {
		return fmt.Errorf("%s", t.GetMessage("completion.error_write_config", 0, map[string]interface{}{"Error": err.Error()}))
	}

	ui.PrintSuccess(f.out, t.GetMessage("completion.installed_success", 0, map[string]interface{}{"File": configFile}))
	f.printRestart(t, configFile)
	return nil
}

func (f *CompletionCommandFactory) printRestart(t *i18n.Translations, configFile string) {
	_, _ = fmt.Fprintln(f.out, t.GetMessage("completion.restart_shell", 0, nil))
	_, _ = fmt.Fprintf(f.out, "  source %s\n", configFile)
}
