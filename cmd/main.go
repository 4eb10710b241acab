package main

import (
	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("peekline"),
		kong.Description("Line-aware text inspection."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

type CLI struct {
	Count   CountCmd   `cmd:"" help:"Count lines and characters." aliases:"wc"`
	Lines   LinesCmd   `cmd:"" help:"Print a file with line numbers." aliases:"nl"`
	Version VersionCmd `cmd:"" help:"Show version."`
}
