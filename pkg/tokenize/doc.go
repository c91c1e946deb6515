/*
Package tokenize splits text into word tokens following Penn Treebank
conventions.

Text is first cut into sentences, then every sentence is tokenized with a
fixed sequence of rewrite rules: punctuation becomes separate tokens, quotes
are rewritten to `` and '', clitics such as 's and n't are split from their
host word and a handful of fused forms (cannot, gonna, wanna...) are broken
in two. The tokenizer never fails: any input yields a possibly empty token
slice.
*/
package tokenize
