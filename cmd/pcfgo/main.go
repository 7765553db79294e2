// Command pcfgo is the command-line entry point tying together
// grammar induction, Markovization, rare-word handling, the outside
// heuristic and the weighted deductive chart parser (spec §6.8).
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli/v2"

	"github.com/npillmayer/pcfgo/grammar"
	"github.com/npillmayer/pcfgo/induce"
	"github.com/npillmayer/pcfgo/markov"
	"github.com/npillmayer/pcfgo/outside"
	"github.com/npillmayer/pcfgo/parser"
	"github.com/npillmayer/pcfgo/pcfgerr"
	"github.com/npillmayer/pcfgo/reconstruct"
	"github.com/npillmayer/pcfgo/symtab"
	"github.com/npillmayer/pcfgo/tree"
	"github.com/npillmayer/pcfgo/unking"
)

// tracer returns the global gtrace.SyntaxTracer, following the
// convention used throughout the parsing toolbox this pipeline descends
// from.
func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

func traceLevel(name string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(name)
}

func main() {
	gtrace.SyntaxTracer = gologadapter.New()
	app := &cli.App{
		Name:  "pcfgo",
		Usage: "train and run a probabilistic context-free grammar pipeline",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "trace", Value: "Info", Usage: "Trace level [Debug|Info|Error]"},
		},
		Before: func(c *cli.Context) error {
			tracer().SetTraceLevel(traceLevel(c.String("trace")))
			return nil
		},
		Commands: []*cli.Command{
			induceCommand(),
			parseCommand(),
			binariseCommand(),
			debinariseCommand(),
			unkCommand(),
			smoothCommand(),
			outsideCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(pcfgerr.CodeOf(err))
	}
}

func induceCommand() *cli.Command {
	return &cli.Command{
		Name:      "induce",
		Usage:     "induce a PCFG from gold trees read on stdin",
		ArgsUsage: "[GRAMMAR]",
		Action: func(c *cli.Context) error {
			trees, err := readTrees(os.Stdin)
			if err != nil {
				return err
			}
			tracer().Infof("inducing a grammar from %d trees", len(trees))
			ind := induce.New()
			for _, t := range trees {
				if err := ind.Add(t); err != nil {
					return err
				}
			}

			var rulesOut, lexiconOut, wordsOut = os.Stdout, os.Stdout, os.Stdout
			if name := c.Args().First(); name != "" {
				rf, err := os.Create(name + ".rules")
				if err != nil {
					return pcfgerr.NewIOError(name+".rules", err)
				}
				defer rf.Close()
				lf, err := os.Create(name + ".lexicon")
				if err != nil {
					return pcfgerr.NewIOError(name+".lexicon", err)
				}
				defer lf.Close()
				wf, err := os.Create(name + ".words")
				if err != nil {
					return pcfgerr.NewIOError(name+".words", err)
				}
				defer wf.Close()
				rulesOut, lexiconOut, wordsOut = rf, lf, wf
			}
			if err := ind.WriteRules(rulesOut); err != nil {
				return err
			}
			if err := ind.WriteLexicon(lexiconOut); err != nil {
				return err
			}
			return ind.WriteWords(wordsOut)
		},
	}
}

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "parse sentences read on stdin against a grammar",
		ArgsUsage: "RULES LEXICON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "paradigma", Aliases: []string{"p"}},
			&cli.StringFlag{Name: "initial-nonterminal", Aliases: []string{"i"}, Value: "ROOT"},
			&cli.BoolFlag{Name: "unking", Aliases: []string{"u"}},
			&cli.BoolFlag{Name: "smoothing", Aliases: []string{"s"}},
			&cli.Uint64Flag{Name: "threshold-beam", Aliases: []string{"t"}},
			&cli.Uint64Flag{Name: "rank-beam", Aliases: []string{"r"}},
			&cli.StringFlag{Name: "astar", Aliases: []string{"a"}},
		},
		Action: func(c *cli.Context) error {
			if p := c.String("paradigma"); p != "" && p != "deductive" {
				return &pcfgerr.InvalidArgsError{Reason: fmt.Sprintf("unsupported parsing paradigma %q: only deductive is implemented", p)}
			}
			if c.IsSet("threshold-beam") {
				return &pcfgerr.InvalidArgsError{Reason: "--threshold-beam is accepted for CLI compatibility but beam search is not implemented"}
			}
			if c.IsSet("rank-beam") {
				return &pcfgerr.InvalidArgsError{Reason: "--rank-beam is accepted for CLI compatibility but beam search is not implemented"}
			}
			if c.Args().Len() < 2 {
				return &pcfgerr.InvalidArgsError{Reason: "parse requires RULES and LEXICON arguments"}
			}
			rulesPath, lexiconPath := c.Args().Get(0), c.Args().Get(1)

			tab := symtab.New()
			g := grammar.New(tab)
			if err := loadGrammarFiles(g, rulesPath, lexiconPath); err != nil {
				return err
			}
			tracer().Infof("loaded grammar from %s / %s (%d symbols)", rulesPath, lexiconPath, tab.Len())

			startName := c.String("initial-nonterminal")
			start, ok := tab.Lookup(startName)
			if !ok {
				return &pcfgerr.UnknownSymbolError{Symbol: startName}
			}

			var out *outside.Table
			if astarPath := c.String("astar"); astarPath != "" {
				f, err := os.Open(astarPath)
				if err != nil {
					return pcfgerr.NewIOError(astarPath, err)
				}
				defer f.Close()
				out, err = outside.ReadFrom(f, tab, astarPath)
				if err != nil {
					return err
				}
			}

			unked := c.Bool("unking") || c.Bool("smoothing")
			p := parser.New(g, start, out)
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := scanner.Text()
				words := strings.Fields(line)
				sentence := make([]int32, len(words))
				for i, w := range words {
					if !unked {
						id, ok := tab.Lookup(w)
						if !ok || !g.IsTerminal(id) {
							return &pcfgerr.UnknownSymbolError{Symbol: w}
						}
						sentence[i] = id
						continue
					}
					sentence[i] = tab.Insert(w)
				}
				wm, ok := p.Parse(sentence)
				if !ok {
					tracer().Debugf("no parse for %q", line)
					fmt.Printf("(NOPARSE %s)\n", line)
					continue
				}
				b := reconstruct.New(g, wm)
				t, err := b.Reconstruct(start, sentence)
				if err != nil {
					return err
				}
				fmt.Println(t.String())
			}
			return nil
		},
	}
}

func binariseCommand() *cli.Command {
	return &cli.Command{
		Name:  "binarise",
		Usage: "binarise trees read on stdin",
		Flags: []cli.Flag{
			&cli.Uint64Flag{Name: "horizontal", Aliases: []string{"H"}, Value: 999},
			&cli.Uint64Flag{Name: "vertical", Aliases: []string{"v"}, Value: 1},
		},
		Action: func(c *cli.Context) error {
			h := int(c.Uint64("horizontal"))
			v := int(c.Uint64("vertical"))
			return transformTrees(func(t *tree.Tree) *tree.Tree {
				return markov.Binarise(t, h, v)
			})
		},
	}
}

func debinariseCommand() *cli.Command {
	return &cli.Command{
		Name:  "debinarise",
		Usage: "debinarise trees read on stdin",
		Action: func(c *cli.Context) error {
			return transformTrees(markov.Debinarise)
		},
	}
}

func unkCommand() *cli.Command {
	return &cli.Command{
		Name:  "unk",
		Usage: "replace rare words with the literal UNK",
		Flags: []cli.Flag{
			&cli.Uint64Flag{Name: "threshold", Aliases: []string{"t"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			return rareWordTransform(c.Uint64("threshold"), unking.Unk)
		},
	}
}

func smoothCommand() *cli.Command {
	return &cli.Command{
		Name:  "smooth",
		Usage: "replace rare words with shape-based signatures",
		Flags: []cli.Flag{
			&cli.Uint64Flag{Name: "threshold", Aliases: []string{"t"}},
		},
		Action: func(c *cli.Context) error {
			return rareWordTransform(c.Uint64("threshold"), unking.Smooth)
		},
	}
}

func outsideCommand() *cli.Command {
	return &cli.Command{
		Name:      "outside",
		Usage:     "compute the Viterbi outside table for a grammar",
		ArgsUsage: "RULES LEXICON [GRAMMAR]  (writes GRAMMAR.outside, or stdout if omitted)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "initial-nonterminal", Aliases: []string{"i"}, Value: "ROOT"},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() < 2 {
				return &pcfgerr.InvalidArgsError{Reason: "outside requires RULES and LEXICON arguments"}
			}
			rulesPath, lexiconPath := c.Args().Get(0), c.Args().Get(1)

			tab := symtab.New()
			g := grammar.New(tab)
			if err := loadGrammarFiles(g, rulesPath, lexiconPath); err != nil {
				return err
			}
			startName := c.String("initial-nonterminal")
			start, ok := tab.Lookup(startName)
			if !ok {
				return &pcfgerr.UnknownSymbolError{Symbol: startName}
			}
			tbl := outside.Compute(g, start)

			out := os.Stdout
			if name := c.Args().Get(2); name != "" {
				sidecar := name + ".outside"
				f, err := os.Create(sidecar)
				if err != nil {
					return pcfgerr.NewIOError(sidecar, err)
				}
				defer f.Close()
				out = f
			}
			return tbl.WriteTo(out, tab, "outside")
		},
	}
}

func loadGrammarFiles(g *grammar.Grammar, rulesPath, lexiconPath string) error {
	rf, err := os.Open(rulesPath)
	if err != nil {
		return pcfgerr.NewIOError(rulesPath, err)
	}
	defer rf.Close()
	if err := g.LoadRules(rf, rulesPath); err != nil {
		return err
	}

	lf, err := os.Open(lexiconPath)
	if err != nil {
		return pcfgerr.NewIOError(lexiconPath, err)
	}
	defer lf.Close()
	return g.LoadLexicon(lf, lexiconPath)
}

func readTrees(f *os.File) ([]*tree.Tree, error) {
	r := tree.NewReader(f)
	var trees []*tree.Tree
	for {
		t, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		trees = append(trees, t)
	}
	return trees, nil
}

func transformTrees(transform func(*tree.Tree) *tree.Tree) error {
	r := tree.NewReader(os.Stdin)
	for {
		t, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if err := transform(t).WriteTo(os.Stdout); err != nil {
			return pcfgerr.NewIOError("stdout", err)
		}
	}
	return nil
}

func rareWordTransform(threshold uint64, transform func(*tree.Tree, map[string]bool) *tree.Tree) error {
	trees, err := readTrees(os.Stdin)
	if err != nil {
		return err
	}
	counts := unking.CountWords(trees)
	rare := unking.RareWords(counts, threshold)
	for _, t := range trees {
		if err := transform(t, rare).WriteTo(os.Stdout); err != nil {
			return pcfgerr.NewIOError("stdout", err)
		}
	}
	return nil
}
