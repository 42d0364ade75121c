package completion_helper

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/admisiones-iti/admisiones/internal/domain/models"
	"github.com/urfave/cli/v3"
)

// Out recibe las sugerencias; los tests lo reemplazan por un buffer.
var Out io.Writer = os.Stdout

// DefaultFlagComplete imprime todos los flags del comando actual para facilitar la finalización del shell.
func DefaultFlagComplete(_ context.Context, cmd *cli.Command) {
	for _, f := range cmd.Flags {
		for _, name := range f.Names() {
			if len(name) == 1 {
				_, _ = fmt.Fprintln(Out, "-"+name)
			} else {
				_, _ = fmt.Fprintln(Out, "--"+name)
			}
		}
	}
}

// ModalityFlagComplete sugiere las modalidades cuando el último argumento es
// el flag de modalidad, y los flags del comando en cualquier otro caso.
func ModalityFlagComplete(ctx context.Context, cmd *cli.Command) {
	if expectsModality(os.Args) {
		for _, m := range models.Modalities() {
			_, _ = fmt.Fprintln(Out, strings.ToLower(string(m)))
		}
		return
	}
	DefaultFlagComplete(ctx, cmd)
}

func expectsModality(args []string) bool {
	for i := len(args) - 1; i >= 0; i-- {
		switch args[i] {
		case "--generate-shell-completion":
			continue
		case "--modalidad", "-m":
			return true
		default:
			return false
		}
	}
	return false
}
