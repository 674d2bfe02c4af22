package scoring

// Lexicon is a closed, read-only word set matched by exact lowercase comparison.
type Lexicon map[string]struct{}

func newLexicon(words ...string) Lexicon {
	l := make(Lexicon, len(words))
	for _, w := range words {
		l[w] = struct{}{}
	}
	return l
}

// Contains reports whether token is a member of the lexicon.
func (l Lexicon) Contains(token string) bool {
	_, ok := l[token]
	return ok
}

// Count returns how many tokens are members of the lexicon. Repeats count.
func (l Lexicon) Count(tokens []string) int {
	n := 0
	for _, t := range tokens {
		if l.Contains(t) {
			n++
		}
	}
	return n
}

var (
	positiveWords  = []string{"love", "peace", "joy", "hope", "light", "blessed", "grateful", "beautiful", "wonderful", "amazing"}
	negativeWords  = []string{"hate", "fear", "dark", "pain", "suffering", "lost", "broken", "sad", "angry", "despair"}
	spiritualWords = []string{"god", "faith", "spirit", "soul", "divine", "prayer", "sacred", "holy", "blessed", "grace"}
	materialWords  = []string{"money", "wealth", "success", "career", "business", "profit", "material", "physical", "worldly"}
	stopWords      = []string{"that", "this", "with", "from", "they", "have", "will", "been", "were"}

	positiveLexicon  = newLexicon(positiveWords...)
	negativeLexicon  = newLexicon(negativeWords...)
	spiritualLexicon = newLexicon(spiritualWords...)
	materialLexicon  = newLexicon(materialWords...)
	stopWordSet      = newLexicon(stopWords...)
)

// Lexicons lists every word set the scorer matches against, in declaration order.
type Lexicons struct {
	Positive  []string            `json:"positive" yaml:"positive"`
	Negative  []string            `json:"negative" yaml:"negative"`
	Spiritual []string            `json:"spiritual" yaml:"spiritual"`
	Material  []string            `json:"material" yaml:"material"`
	StopWords []string            `json:"stopWords" yaml:"stopWords"`
	Themes    map[string][]string `json:"themes" yaml:"themes"`
	Emotions  map[string][]string `json:"emotions" yaml:"emotions"`
}

// AllLexicons returns a copy of the lexicons. Callers may mutate the result freely.
func AllLexicons() Lexicons {
	return Lexicons{
		Positive:  cloneWords(positiveWords),
		Negative:  cloneWords(negativeWords),
		Spiritual: cloneWords(spiritualWords),
		Material:  cloneWords(materialWords),
		StopWords: cloneWords(stopWords),
		Themes:    labelWords(themeLabels),
		Emotions:  labelWords(emotionLabels),
	}
}

func cloneWords(words []string) []string {
	return append([]string(nil), words...)
}

func labelWords(labels []labelDef) map[string][]string {
	out := make(map[string][]string, len(labels))
	for _, l := range labels {
		out[l.Name] = cloneWords(l.Words)
	}
	return out
}
