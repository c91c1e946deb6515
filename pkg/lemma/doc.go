/*
Package lemma reduces English words to their dictionary base form.

It implements WordNet's morphy procedure for nouns: irregular forms are
resolved through an exception list, regular forms through suffix detachment
rules, and every candidate is checked against a noun index. Words that
cannot be resolved are returned unchanged.

The noun index and exception list are language data that must be
provisioned before the first call. LoadLexicon reads them from any fs.FS
using the WordNet database file names (index.noun, noun.exc), so both the
embedded copy and a full WordNet dict directory can be used.
*/
package lemma
