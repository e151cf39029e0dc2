// Package logger prints progress messages to stderr, keeping stdout free
// for machine-readable output.
package logger

import (
	"fmt"
	"os"

	"github.com/megakid/Terraform/pkg/pretty"
)

func Info(msg string) {
	fmt.Fprintln(os.Stderr, pretty.Colorf("[blue][bold]Info:[reset] %s", msg))
}

func Warn(msg string) {
	fmt.Fprintln(os.Stderr, pretty.Colorf("[yellow][bold]Warning:[reset] %s", msg))
}
