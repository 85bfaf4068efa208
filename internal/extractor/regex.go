package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/example/voicetutor/pkg/models"
)

// RegexExtractor is the default Extractor: ordered regex tables and fixed
// phrase sets, no semantic understanding.
type RegexExtractor struct{}

// NewRegexExtractor returns the default pattern-based extractor.
func NewRegexExtractor() *RegexExtractor {
	return &RegexExtractor{}
}

var _ Extractor = (*RegexExtractor)(nil)

func (e *RegexExtractor) Extract(text string) Signals {
	if text == "" {
		return Signals{}
	}
	lower := strings.ToLower(text)

	s := Signals{
		Sentences:         extractSentences(text),
		Topic:             firstMatch(topicPatterns, text, 3),
		Position:          firstMatch(positionPatterns, text, 3),
		ConversationTopic: detectConversationTopic(lower),
		Completion:        containsAny(lower, completionPhrases),
		Words:             extractEnglishWords(lower),
		Personal:          extractPersonalInfo(text, lower),
	}

	switch {
	case containsAny(lower, wrongPhrases):
		s.Answer = AnswerWrong
	case containsAny(lower, correctPhrases):
		s.Answer = AnswerCorrect
	}
	return s
}

func extractSentences(text string) []string {
	var found []string
	seen := map[string]bool{}
	for _, p := range sentencePatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			sentence := strings.TrimSpace(m[1])
			if sentence == "" || seen[sentence] {
				continue
			}
			seen[sentence] = true
			found = append(found, sentence)
		}
	}
	return found
}

// firstMatch walks the pattern table in order and returns the first capture
// longer than minLen, trimmed of trailing punctuation. Patterns without a
// capture group contribute their whole match.
func firstMatch(patterns []*regexp.Regexp, text string, minLen int) string {
	for _, p := range patterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := m[0]
		if len(m) > 1 {
			candidate = m[1]
		}
		candidate = trimMarker(candidate)
		if utf8.RuneCountInString(candidate) > minLen {
			return candidate
		}
	}
	return ""
}

func trimMarker(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".,!?؟،")
}

func detectConversationTopic(lower string) string {
	for _, topic := range conversationTopics {
		if strings.Contains(lower, topic) {
			return capitalize(topic)
		}
	}
	return ""
}

func extractEnglishWords(lower string) []string {
	matches := englishWordPattern.FindAllString(lower, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	var words []string
	for _, w := range matches {
		if !seen[w] {
			seen[w] = true
			words = append(words, w)
		}
	}
	return words
}

func extractPersonalInfo(text, lower string) models.PersonalInfo {
	var info models.PersonalInfo

	for _, p := range namePatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		n := utf8.RuneCountInString(name)
		if n > 1 && n < 20 && !nonNameWords[strings.ToLower(name)] {
			info.FirstName = capitalize(name)
			break
		}
	}

	if m := agePattern.FindStringSubmatch(text); m != nil {
		if age, err := strconv.Atoi(m[1]); err == nil && age >= 5 && age <= 100 {
			info.Age = age
		}
	}

	for _, p := range cityPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		city := strings.TrimSpace(m[1])
		n := utf8.RuneCountInString(city)
		if n > 2 && n < 30 {
			info.City = capitalize(city)
			break
		}
	}

	for _, p := range occupationPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			info.Occupation = strings.ToLower(strings.TrimSpace(m[1]))
			break
		}
	}

	for _, hobby := range hobbyKeywords {
		if strings.Contains(lower, hobby) {
			info.Hobbies = append(info.Hobbies, hobby)
			if len(info.Hobbies) == 5 {
				break
			}
		}
	}

	return info
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
