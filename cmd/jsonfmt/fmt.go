package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/jsondoc-go/jsondoc/pkg/jsondoc"
)

// fmtCommand reads JSON documents and writes them back out, compact or
// pretty, to standard output.
type fmtCommand struct {
	files      *[]string
	pretty     *bool
	stripEmpty *bool
}

func (cmd *fmtCommand) run(c *kingpin.ParseContext) error {
	if len(*cmd.files) == 0 {
		cmd.reformat("stdin", os.Stdin)
		return nil
	}
	for _, name := range *cmd.files {
		f, err := os.Open(name)
		if err != nil {
			exitWithErr(fmt.Errorf("failed to open file: %w", err))
		}
		cmd.reformat(name, f)
		_ = f.Close()
	}
	return nil
}

func (cmd *fmtCommand) reformat(name string, r io.Reader) {
	data, err := io.ReadAll(r)
	if err != nil {
		exitWithErr(fmt.Errorf("%s: %w", name, err))
	}
	v, err := jsondoc.FromJSON(data)
	if err != nil {
		exitWithErr(fmt.Errorf("%s: %w", name, err))
	}
	if *cmd.stripEmpty {
		v.RemoveEmpty()
	}
	if *cmd.pretty {
		if err := jsondoc.Write(os.Stdout, v, true); err != nil {
			exitWithErr(fmt.Errorf("%s: %w", name, err))
		}
		return
	}
	fmt.Println(jsondoc.Serialize(v))
}

func addFmtCommand(app *kingpin.Application) {
	cmd := &fmtCommand{}
	fc := app.Command("fmt", "Reformat JSON documents to standard output.").Action(cmd.run).Default()
	cmd.pretty = fc.Flag("pretty", "Indent output with tabs.").Short('p').Bool()
	cmd.stripEmpty = fc.Flag("strip-empty", "Drop empty values from objects before writing.").Bool()
	cmd.files = fc.Arg("file", "Files to reformat; stdin when omitted.").ExistingFiles()
}
