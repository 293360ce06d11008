// Package data embeds the dictionary, frequency, bigram, and tone lexicon files.
package data

import _ "embed"

//go:embed words.txt
var Words []byte

//go:embed word_freq.txt
var WordFreq []byte

//go:embed bigrams.txt
var Bigrams string

//go:embed tone_lexicon.txt
var ToneLexicon string
