// Package commonwords holds the static whitelist of very common English words
// that must never be touched by dictionary correction.
//
// Short function words and high-frequency vocabulary sit close, in
// edit-distance terms, to short proper nouns ("can" is one substitution away
// from "Kaan"). Correcting them produces false positives that are far worse
// than any missed correction, so the whitelist is checked as a hard
// precondition before any scoring logic runs.
//
// The list is the top slice of the google-10000-english frequency list
// (https://github.com/first20hours/google-10000-english), extended with a few
// words that showed up as false-positive regressions in real transcripts.
package commonwords

import (
	"strings"
	"unicode/utf8"
)

// IsCommon reports whether word (compared case-insensitively) is in the
// common-English whitelist.
func IsCommon(word string) bool {
	_, ok := common[strings.ToLower(word)]
	return ok
}

// IsProtected reports whether word is exempt from dictionary correction:
// either it is at most two letters long or it is a common English word.
func IsProtected(word string) bool {
	if utf8.RuneCountInString(word) <= 2 {
		return true
	}
	return IsCommon(word)
}

// common is built once at init from the word list below.
var common = func() map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()

var words = []string{
	// Top 100 by frequency, plus known regression words (con, knew, known).
	"the", "of", "and", "a", "to", "in", "is", "you", "that", "it",
	"he", "was", "for", "on", "are", "as", "with", "his", "they", "i",
	"at", "be", "this", "have", "from", "or", "one", "had", "by", "word",
	"but", "not", "what", "all", "were", "we", "when", "your", "can", "said",
	"con", "so", "now", "know", "knew", "known",
	"there", "each", "which", "she", "do", "how", "their", "if", "will", "up",
	"other", "about", "out", "many", "then", "them", "these", "some", "her",
	"would", "make", "like", "into", "him", "time", "has", "two", "more", "go",
	"no", "way", "could", "my", "than", "first", "water", "been", "call", "who",
	"its", "find", "long", "down", "day", "did", "get", "come", "made", "may",
	"part", "over", "new", "sound", "take", "only", "little", "work", "place",
	"year", "live", "me", "back", "give", "most", "very", "after", "thing",

	// 101-300.
	"our", "just", "name", "good", "sentence", "man", "think", "say", "great", "where",
	"help", "through", "much", "before", "line", "right", "too", "mean", "old", "any",
	"same", "tell", "boy", "follow", "came", "want", "show", "also", "around", "form",
	"three", "small", "set", "put", "end", "why", "again", "turn", "here", "off",
	"went", "number", "men", "every", "found",
	"still", "between", "mane", "should", "home", "big", "air",
	"own", "under", "read", "last", "never", "us", "left", "along", "while",
	"might", "next", "below", "saw", "something", "thought", "both", "few", "those",
	"always", "looked", "large", "often", "together", "asked", "house", "don't", "world",
	"going", "school", "important", "until", "food", "keep", "children", "feet",
	"land", "side", "without", "once", "animal", "life", "enough", "took", "sometimes",
	"four", "head", "above", "kind", "began", "almost", "page", "got", "earth",
	"need", "far", "hand", "high", "mother", "light", "country", "father", "let",
	"night", "picture", "being", "study", "second", "book", "carry", "science", "eat",
	"room", "friend", "idea", "fish", "mountain", "north", "base", "hear",
	"horse", "cut", "sure", "watch", "color", "face", "wood", "main", "plain",
	"girl", "usual", "young", "ready", "ever", "red", "list", "though", "feel",
	"talk", "bird", "soon", "body", "dog", "family", "direct", "leave", "song", "measure",
	"door", "product", "black", "short", "numeral", "class", "wind", "question", "happen", "complete",
	"ship", "area", "half", "rock", "order", "fire", "south", "problem", "piece", "told",

	// 301-500.
	"pass", "since", "top", "whole", "king", "space", "heard", "best", "hour",
	"better", "during", "hundred", "five", "remember", "step", "early", "hold", "west", "ground",
	"interest", "reach", "fast", "verb", "sing", "listen", "six", "table", "travel", "less",
	"morning", "ten", "simple", "several", "vowel", "toward", "war", "lay", "against", "pattern",
	"slow", "center", "love", "person", "money", "serve", "appear", "road", "map", "rain",
	"rule", "govern", "pull", "cold", "notice", "voice", "unit", "power", "town", "fine",
	"certain", "fly", "fall", "lead", "cry", "dark", "machine", "note", "wait", "plan",
	"figure", "star", "box", "noun", "field", "rest", "correct", "able", "pound", "done",
	"beauty", "drive", "stood", "contain", "front", "teach", "week", "final", "gave", "green",
	"oh", "quick", "develop", "ocean", "warm", "free", "minute", "strong", "special", "mind",
	"behind", "clear", "tail", "produce", "fact", "street", "inch", "multiply", "nothing", "course",
	"stay", "wheel", "full", "force", "blue", "object", "decide", "surface", "deep", "moon",
	"island", "foot", "system", "busy", "test", "record", "boat", "common", "gold", "possible",
	"plane", "stead", "dry", "wonder", "laugh", "thousands", "ago", "ran", "check", "game",
	"shape", "equate", "hot", "miss", "brought", "heat", "snow", "tire", "bring", "yes",
	"distant", "fill", "east", "paint", "language", "among", "grand", "ball", "yet", "wave",
	"drop", "heart", "am", "present", "heavy", "dance", "engine", "position", "arm", "wide",
	"sail", "material", "size", "vary", "settle", "speak", "weight", "general", "ice", "matter",
	"circle", "pair", "include", "divide", "syllable", "felt", "perhaps", "pick", "sudden", "count",
	"square", "reason", "length", "represent", "art", "subject", "region", "energy", "hunt", "probable",

	// 501-700.
	"bed", "brother", "egg", "ride", "cell", "believe", "fraction", "forest", "sit", "race",
	"window", "store", "summer", "train", "sleep", "prove", "lone", "leg", "exercise", "wall",
	"catch", "mount", "wish", "sky", "board", "joy", "winter", "sat", "written", "wild",
	"instrument", "kept", "glass", "grass", "cow", "job", "edge", "sign", "visit", "past",
	"soft", "fun", "bright", "gas", "weather", "month", "million", "bear", "finish", "happy",
	"hope", "flower", "clothe", "strange", "gone", "jump", "baby", "eight", "village", "meet",
	"root", "buy", "raise", "solve", "metal", "whether", "push", "seven", "paragraph", "third",
	"shall", "held", "hair", "describe", "cook", "floor", "either", "result", "burn", "hill",
	"safe", "cat", "century", "consider", "type", "law", "bit", "coast", "copy", "phrase",
	"silent", "tall", "sand", "soil", "roll", "temperature", "finger", "industry", "value", "fight",
	"lie", "beat", "excite", "natural", "view", "sense", "ear", "else", "quite", "broke",
	"case", "middle", "kill", "son", "lake", "moment", "scale", "loud", "spring", "observe",
	"child", "straight", "consonant", "nation", "dictionary", "milk", "speed", "method", "organ", "pay",
	"age", "section", "dress", "cloud", "surprise", "quiet", "stone", "tiny", "climb", "bad",
	"oil", "blood", "touch", "grew", "cent", "mix", "team", "wire", "cost", "lost",
	"brown", "wear", "garden", "equal", "sent", "choose", "fell", "fit", "flow", "fair",
	"bank", "collect", "save", "control", "decimal", "gentle", "woman", "captain", "practice", "separate",
	"difficult", "doctor", "please", "protect", "noon", "whose", "locate", "ring", "character", "insect",
	"caught", "period", "indicate", "radio", "spoke", "atom", "human", "history", "effect", "electric",
	"expect", "crop", "modern", "element", "hit", "student", "corner", "party", "supply", "bone",

	// 701-1000.
	"rail", "imagine", "provide", "agree", "thus", "capital", "won't", "chair", "danger", "fruit",
	"rich", "thick", "soldier", "process", "operate", "guess", "necessary", "sharp", "wing", "create",
	"neighbor", "wash", "bat", "rather", "crowd", "corn", "compare", "poem", "string", "bell",
	"depend", "meat", "rub", "tube", "famous", "dollar", "stream", "fear", "sight", "thin",
	"triangle", "planet", "hurry", "chief", "colony", "clock", "mine", "tie", "enter", "major",
	"fresh", "search", "send", "yellow", "gun", "allow", "print", "dead", "spot", "desert",
	"suit", "current", "lift", "rose", "continue", "block", "chart", "hat", "sell", "success",
	"company", "subtract", "event", "particular", "deal", "swim", "term", "opposite", "wife", "shoe",
	"shoulder", "spread", "arrange", "camp", "invent", "cotton", "born", "determine", "quart", "nine",
	"truck", "noise", "level", "chance", "gather", "shop", "stretch", "throw", "shine", "property",
	"column", "molecule", "select", "wrong", "gray", "repeat", "require", "broad", "prepare", "salt",
	"nose", "plural", "anger", "claim", "continent", "oxygen", "sugar", "death", "pretty", "skill",
	"women", "season", "solution", "magnet", "silver", "thank", "branch", "match", "suffix", "especially",
	"fig", "afraid", "huge", "sister", "steel", "discuss", "forward", "similar", "guide", "experience",
	"score", "apple", "bought", "led", "pitch", "coat", "mass", "card", "band", "rope",
	"slip", "win", "dream", "evening", "condition", "feed", "tool", "total", "basic", "smell",
	"valley", "nor", "double", "seat", "arrive", "master", "track", "parent", "shore", "division",
	"sheet", "substance", "favor", "connect", "post", "spend", "chord", "fat", "glad", "original",
	"share", "station", "dad", "bread", "charge", "proper", "bar", "offer", "segment", "slave",
	"duck", "instant", "market", "degree", "populate", "chick", "dear", "enemy", "reply", "drink",
	"occur", "support", "speech", "nature", "range", "steam", "motion", "path", "liquid", "log",
	"meant", "quotient", "teeth", "shell", "neck",

	// Regression words from real transcripts that were being "corrected" into
	// dictionary names.
	"foremost", "girlfriend", "using",
	"is", "are", "was", "were", "be", "being", "has",
	"does", "get", "got", "give", "go", "come", "see",
}
