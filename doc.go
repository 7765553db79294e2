/*
Package pcfgo is a training-and-inference pipeline for probabilistic
context-free grammars (PCFGs) over bracketed-s-expression parse trees.

From a corpus of gold trees it induces a PCFG (package induce); it
transforms that grammar through Markovization (package markov) and
rare-word handling (package unking); it computes outside-weight upper
bounds for A* search (package outside); and, given a grammar plus a
tokenised sentence, its weighted deductive chart parser (package parser)
produces a best-weighted parse tree (package reconstruct) or reports
non-parsability.

Package structure:

■ symtab: bidirectional string/integer-id interner shared by grammar,
chart and outside.

■ grammar: the rule store — productions indexed by left-hand side, and
appearances indexed by right-hand symbol.

■ chart: the triangular weight map, the dense per-sentence storage for
best-known weights of (symbol, span) cells.

■ agenda: the max-priority queue of chart items driving the parser's
best-first search.

■ outside: the Viterbi inside/outside fixed point, used as an A*
admissible heuristic.

■ parser: the agenda-driven deductive chart parser.

■ reconstruct: backtracks a completed chart to a best-derivation tree.

■ tree: the bracketed s-expression tree type and its reader/writer.

■ markov: tree binarisation/debinarisation.

■ unking: rare-word replacement, literal and shape-based.

■ induce: relative-frequency PCFG induction from gold trees.

■ cmd/pcfgo: the command-line entry point tying all of the above
together.
*/
package pcfgo
