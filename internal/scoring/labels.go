package scoring

import "sort"

const maxLabels = 3

type labelDef struct {
	Name  string
	Words []string
	set   Lexicon
}

func newLabel(name string, words ...string) labelDef {
	return labelDef{Name: name, Words: words, set: newLexicon(words...)}
}

var (
	defaultThemes   = []string{"Spiritual Growth", "Inner Peace", "Divine Love"}
	defaultEmotions = []string{"Peaceful", "Hopeful", "Contemplative"}

	themeLabels = []labelDef{
		newLabel("Spiritual Growth", "faith", "spirit", "soul", "growth", "wisdom", "journey", "path"),
		newLabel("Inner Peace", "peace", "calm", "stillness", "rest", "serenity", "quiet"),
		newLabel("Divine Love", "love", "god", "divine", "grace", "mercy", "beloved"),
		newLabel("Sacred Devotion", "sacred", "holy", "prayer", "worship", "devotion", "pray"),
		newLabel("Gratitude", "grateful", "thankful", "thanks", "blessed", "gift"),
		newLabel("Hope & Renewal", "hope", "light", "renewal", "dawn", "rise", "new"),
		newLabel("Suffering & Trial", "pain", "suffering", "broken", "lost", "despair", "trial", "dark"),
		newLabel("Worldly Ambition", "money", "wealth", "success", "career", "business", "profit", "worldly"),
		newLabel("Service & Compassion", "serve", "service", "compassion", "kindness", "charity", "neighbor"),
	}

	emotionLabels = []labelDef{
		newLabel("Peaceful", "peace", "calm", "serene", "still", "rest"),
		newLabel("Hopeful", "hope", "light", "tomorrow", "faith", "dawn"),
		newLabel("Joyful", "joy", "happy", "glad", "rejoice", "wonderful", "amazing", "beautiful"),
		newLabel("Grateful", "grateful", "thankful", "blessed", "thanks"),
		newLabel("Loving", "love", "beloved", "compassion", "kindness", "tender"),
		newLabel("Sorrowful", "sad", "sorrow", "grief", "tears", "pain", "mourn"),
		newLabel("Fearful", "fear", "afraid", "dark", "anxious", "dread"),
		newLabel("Angry", "angry", "hate", "rage", "wrath"),
		newLabel("Despairing", "despair", "lost", "broken", "suffering", "hopeless"),
		newLabel("Contemplative", "reflect", "ponder", "meditate", "silence", "wonder"),
	}
)

// Themes ranks theme labels by lexicon hits and pads with the default themes.
func Themes(tokens []string) []string {
	return rankLabels(tokens, themeLabels, defaultThemes)
}

// Emotions ranks emotion labels by lexicon hits and pads with the default emotions.
func Emotions(tokens []string) []string {
	return rankLabels(tokens, emotionLabels, defaultEmotions)
}

type labelHit struct {
	name  string
	hits  int
	order int
}

func rankLabels(tokens []string, defs []labelDef, defaults []string) []string {
	hits := make([]labelHit, 0, len(defs))
	for i, def := range defs {
		if n := def.set.Count(tokens); n > 0 {
			hits = append(hits, labelHit{name: def.Name, hits: n, order: i})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].hits != hits[j].hits {
			return hits[i].hits > hits[j].hits
		}
		return hits[i].order < hits[j].order
	})

	out := make([]string, 0, maxLabels)
	seen := make(map[string]struct{}, maxLabels)
	add := func(name string) {
		if len(out) == maxLabels {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	for _, h := range hits {
		add(h.name)
	}
	for _, d := range defaults {
		add(d)
	}
	return out
}
