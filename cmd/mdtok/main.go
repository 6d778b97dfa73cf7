// Command mdtok tokenizes a Markdown document and prints its event
// stream, grounded on cmd/poc's flag-to-extensions wiring and
// cmd/soc's renameio-based atomic output.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jcorbin/mdtok/mdtok"
)

var (
	gfm       bool
	math      bool
	mdx       bool
	frontmatter bool
	outPath   string
	slugs     bool

	rootCmd = &cobra.Command{
		Use:          "mdtok [file]",
		Short:        "mdtok",
		Long:         "Tokenize a Markdown document into its flat event stream.",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE:         run,
	}
)

func init() {
	rootCmd.Flags().BoolVar(&gfm, "gfm", false, "enable GitHub Flavored Markdown extensions")
	rootCmd.Flags().BoolVar(&math, "math", false, "enable math flow/text constructs")
	rootCmd.Flags().BoolVar(&mdx, "mdx", false, "enable MDX constructs")
	rootCmd.Flags().BoolVar(&frontmatter, "frontmatter", false, "enable YAML/TOML frontmatter")
	rootCmd.Flags().StringVar(&outPath, "out", "", "write the event dump to this path atomically instead of stdout")
	rootCmd.Flags().BoolVar(&slugs, "slugs", false, "print heading-text to anchor-slug mappings instead of events")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	var src []byte
	var err error
	if len(args) == 1 {
		src, err = os.ReadFile(args[0])
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}

	opts := buildOptions()
	events, msg := mdtok.ToEvents(src, opts)
	if msg != nil {
		return msg
	}

	var dump []byte
	if slugs {
		dump = []byte(renderSlugs(src, events))
	} else {
		dump = []byte(renderEvents(events))
	}

	if outPath == "" {
		_, err := os.Stdout.Write(dump)
		return err
	}
	return writeAtomic(outPath, dump)
}

func buildOptions() mdtok.Options {
	constructs := mdtok.DefaultConstructs()
	if gfm {
		constructs = mdtok.GFMConstructs()
	}
	constructs.MathFlow = constructs.MathFlow || math
	constructs.MathText = constructs.MathText || math
	constructs.MdxEsm = constructs.MdxEsm || mdx
	constructs.MdxExpressionFlow = constructs.MdxExpressionFlow || mdx
	constructs.MdxExpressionText = constructs.MdxExpressionText || mdx
	constructs.MdxJsxFlow = constructs.MdxJsxFlow || mdx
	constructs.MdxJsxText = constructs.MdxJsxText || mdx
	constructs.Frontmatter = constructs.Frontmatter || frontmatter
	return mdtok.Options{Constructs: constructs}
}
