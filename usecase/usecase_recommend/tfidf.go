package usecase_recommend

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/ninelens/reviewrec/domain"
	"github.com/ninelens/reviewrec/domain/domain_util"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TFIDFOptions bound the vectorizer's vocabulary.
type TFIDFOptions struct {
	// MaxFeatures caps the vocabulary to the most frequent terms; <= 0 means
	// unlimited.
	MaxFeatures int
	// MinDocFreq drops terms appearing in fewer documents; <= 0 means 1.
	MinDocFreq int
	// MaxDocRatio drops terms appearing in more than this fraction of
	// documents; <= 0 or > 1 means 1.0 (keep all).
	MaxDocRatio float64
}

// ContentIndex holds the L2-normalized TF-IDF vector of every product's
// aggregated review text (title + body, over the full normalized dataset,
// first-seen product order). Products whose aggregated text is empty keep a
// zero vector: they are valid targets and candidates, just similar to
// nothing.
type ContentIndex struct {
	Products     []string
	ProductIndex map[string]int
	Vocabulary   map[string]int
	Vectors      []map[int]float64
}

// BuildContentIndex aggregates review text per product and vectorizes the
// corpus with TF-IDF: lowercased unigrams and bigrams, stop words removed,
// document-frequency bounds applied, vocabulary capped by corpus frequency,
// smooth IDF, vectors L2-normalized so cosine similarity reduces to a dot
// product.
func BuildContentIndex(ds *domain.Dataset, opts TFIDFOptions) *ContentIndex {
	minDF := opts.MinDocFreq
	if minDF <= 0 {
		minDF = 1
	}
	maxRatio := opts.MaxDocRatio
	if maxRatio <= 0 || maxRatio > 1 {
		maxRatio = 1.0
	}

	idx := &ContentIndex{
		ProductIndex: make(map[string]int),
		Vocabulary:   make(map[string]int),
	}

	var docs []*strings.Builder
	for _, r := range ds.Records {
		p, ok := idx.ProductIndex[r.ProductID]
		if !ok {
			p = len(idx.Products)
			idx.ProductIndex[r.ProductID] = p
			idx.Products = append(idx.Products, r.ProductID)
			docs = append(docs, &strings.Builder{})
		}
		if r.Title != "" {
			docs[p].WriteString(r.Title)
			docs[p].WriteByte(' ')
		}
		if r.Text != "" {
			docs[p].WriteString(r.Text)
			docs[p].WriteByte(' ')
		}
	}

	stopWords := domain_util.CombinedStopWords()
	nDocs := len(docs)

	termFreqs := make([]map[string]int, nDocs)
	docFreq := make(map[string]int)
	corpusFreq := make(map[string]int)
	for p, doc := range docs {
		tf := make(map[string]int)
		for _, term := range tokenize(doc.String(), stopWords) {
			tf[term]++
			corpusFreq[term]++
		}
		termFreqs[p] = tf
		for term := range tf {
			docFreq[term]++
		}
	}

	// Vocabulary selection: document-frequency bounds first, then the
	// MaxFeatures cap by highest corpus frequency (ties alphabetical).
	terms := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if df < minDF || float64(df) > maxRatio*float64(nDocs) {
			continue
		}
		terms = append(terms, term)
	}
	if opts.MaxFeatures > 0 && len(terms) > opts.MaxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if corpusFreq[terms[i]] != corpusFreq[terms[j]] {
				return corpusFreq[terms[i]] > corpusFreq[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:opts.MaxFeatures]
	}
	sort.Strings(terms)
	for i, term := range terms {
		idx.Vocabulary[term] = i
	}

	idf := make([]float64, len(terms))
	for term, col := range idx.Vocabulary {
		idf[col] = math.Log(float64(1+nDocs)/float64(1+docFreq[term])) + 1.0
	}

	idx.Vectors = make([]map[int]float64, nDocs)
	for p, tf := range termFreqs {
		vector := make(map[int]float64)
		var normSq float64
		for term, count := range tf {
			col, ok := idx.Vocabulary[term]
			if !ok {
				continue
			}
			weight := float64(count) * idf[col]
			vector[col] = weight
			normSq += weight * weight
		}
		if normSq > 0 {
			length := math.Sqrt(normSq)
			for col := range vector {
				vector[col] /= length
			}
		}
		idx.Vectors[p] = vector
	}

	return idx
}

// tokenize lowercases and Unicode-normalizes text (NFKD with diacritics
// stripped), splits on non-alphanumeric runes, filters stop words and
// degenerate tokens, then appends bigrams of adjacent surviving tokens.
func tokenize(text string, stopWords map[string]bool) []string {
	text = strings.ToLower(foldText(text))

	var unigrams []string
	var current strings.Builder
	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := current.String()
		current.Reset()
		if !domain_util.ShouldSkipWord(word, stopWords) {
			unigrams = append(unigrams, word)
		}
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	tokens := unigrams
	for i := 0; i+1 < len(unigrams); i++ {
		tokens = append(tokens, unigrams[i]+" "+unigrams[i+1])
	}
	return tokens
}

var foldTransformer = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldText(text string) string {
	folded, _, err := transform.String(foldTransformer, text)
	if err != nil {
		return text
	}
	return folded
}
