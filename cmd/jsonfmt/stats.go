package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/jsondoc-go/jsondoc/pkg/intern"
	"github.com/jsondoc-go/jsondoc/pkg/jsondoc"
)

// statsCommand prints structural stats for each JSON document, then the
// state of the process-wide key registry.
type statsCommand struct {
	files *[]string
}

func (cmd *statsCommand) run(c *kingpin.ParseContext) error {
	for _, name := range *cmd.files {
		cmd.printStats(name)
	}
	cmd.printRegistryStats()
	return nil
}

func (cmd *statsCommand) printStats(name string) {
	data, err := os.ReadFile(name)
	if err != nil {
		exitWithErr(fmt.Errorf("failed to read file: %w", err))
	}
	v, err := jsondoc.FromJSON(data)
	if err != nil {
		exitWithErr(fmt.Errorf("%s: %w", name, err))
	}

	var counts docCounts
	counts.add(v, 1)

	bold := color.New(color.Bold)
	bold.Printf("%s:\n", name)
	fmt.Printf(
		"\tsize: %v, depth: %d, object entries: %d\n",
		humanize.Bytes(uint64(len(data))),
		counts.depth,
		counts.entries,
	)
	fmt.Printf(
		"\tobjects: %d, arrays: %d, strings: %d, numbers: %d, bools: %d, nulls: %d\n",
		counts.objects,
		counts.arrays,
		counts.strings,
		counts.numbers,
		counts.bools,
		counts.nulls,
	)
}

func (cmd *statsCommand) printRegistryStats() {
	reg := intern.DefaultRegistry
	bold := color.New(color.Bold)
	bold.Println("Key registry:")
	fmt.Printf("\tkeys: %d, key bytes: %v\n", reg.Len(), humanize.Bytes(reg.Bytes()))
	fmt.Printf("\tintern hits: %d, misses: %d\n", reg.Hits(), reg.Misses())
}

// docCounts tallies values by kind while walking a document tree.
type docCounts struct {
	objects int
	arrays  int
	strings int
	numbers int
	bools   int
	nulls   int
	entries int
	depth   int
}

func (c *docCounts) add(v jsondoc.Value, depth int) {
	if depth > c.depth {
		c.depth = depth
	}
	switch v.Kind() {
	case jsondoc.KindObject:
		c.objects++
		obj, err := v.AsObject()
		if err != nil {
			exitWithErr(err)
		}
		for _, child := range obj.Entries() {
			c.entries++
			c.add(child, depth+1)
		}
	case jsondoc.KindArray, jsondoc.KindSet:
		c.arrays++
		seq, err := v.AsSequence()
		if err != nil {
			exitWithErr(err)
		}
		for child := range seq.Values() {
			c.add(child, depth+1)
		}
	case jsondoc.KindString:
		c.strings++
	case jsondoc.KindNumber:
		c.numbers++
	case jsondoc.KindBool:
		c.bools++
	case jsondoc.KindNull:
		c.nulls++
	}
}

func addStatsCommand(app *kingpin.Application) {
	cmd := &statsCommand{}
	sc := app.Command("stats", "Print stats for JSON documents.").Action(cmd.run)
	cmd.files = sc.Arg("file", "Files to inspect.").Required().ExistingFiles()
}
