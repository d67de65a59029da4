package commands

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

type version struct {
	version    string
	commit     string
	built      string
	runtimeVer string
	out        io.Writer
}

// AddVersionCommand adds the version command to the application.
func AddVersionCommand(app *kingpin.Application, out io.Writer, appVersion, commit, built, runtimeVer string) {
	cmd := &version{
		version:    appVersion,
		commit:     commit,
		built:      built,
		runtimeVer: runtimeVer,
		out:        out,
	}
	app.Command("version", "Prints the current version of kmeta.").Action(cmd.run)
}

func (c *version) run(*kingpin.ParseContext) error {
	if c.version == "" {
		c.version = "[built from source]"
	}
	b := strings.Builder{}
	b.WriteString("kmeta - Kafka cluster metadata reporter\n")
	b.WriteString(fmt.Sprintf("  Version: %s\n", c.version))
	b.WriteString(fmt.Sprintf("  Runtime: %s\n", c.runtimeVer))
	b.WriteString(fmt.Sprintf("    Built: %s\n", c.built))
	b.WriteString(fmt.Sprintf("   Commit: %s\n", c.commit))
	_, err := fmt.Fprint(c.out, b.String())
	return err
}
