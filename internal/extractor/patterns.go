package extractor

import "regexp"

// Drill sentences in assistant output: bolded, numbered-bolded, quoted.
var sentencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\*\*([A-Z][^*]+\.)\*\*`),
	regexp.MustCompile(`\d+\.\s*\*\*([A-Z][^*]+\.)\*\*`),
	regexp.MustCompile(`"([A-Z][^"]+\.)"`),
}

// Lesson-topic markers, English then Arabic. Ordered: first match wins.
var topicPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(Nouns|Verbs|Adjectives|Adverbs|Pronouns|Prepositions|Conjunctions|Articles|Tenses|Grammar)\b`),
	regexp.MustCompile(`(?i)(?:topic|subject)\s+(?:is|are|will be)\s+([A-Z][A-Za-z\s]+)`),
	regexp.MustCompile(`(?i)(?:studying|learning|teaching|discussing)\s+([A-Z][A-Za-z\s]+)`),
	regexp.MustCompile(`(?i)(?:Let's|let's)\s+(?:learn|study|talk about|discuss)\s+([A-Z][A-Za-z\s]+)`),
	regexp.MustCompile(`(?i)(?:Today's topic|Our topic|The topic)\s+(?:is|will be)?:?\s*([A-Z][A-Za-z\s]+)`),
	regexp.MustCompile(`(?i)(?:chapter|lesson|section)\s+(?:on|about)\s+([A-Z][A-Za-z\s]+)`),
	regexp.MustCompile(`الموضوع\s+(?:الحالي|اليوم)[:؟]?\s*(.+)`),
	regexp.MustCompile(`سنتعلم\s+(?:عن|موضوع)\s*(.+)`),
	regexp.MustCompile(`دعنا\s+نتحدث\s+عن\s*(.+)`),
}

// Stopping-point markers, English then Arabic.
var positionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(types of nouns|common nouns|proper nouns|abstract nouns|collective nouns|countable nouns|uncountable nouns)\b`),
	regexp.MustCompile(`(?i)\b(present tense|past tense|future tense|verb forms|irregular verbs)\b`),
	regexp.MustCompile(`(?i)\b(definition|examples|usage|rules|exceptions)\b`),
	regexp.MustCompile(`(?i)(?:We were|You were)\s+(?:discussing|talking about|learning)\s+([A-Za-z][A-Za-z\s]+)`),
	regexp.MustCompile(`(?i)(?:Last time|Previously|Earlier).*?(?:about|discussing|studying)\s+([A-Za-z][A-Za-z\s]+)`),
	regexp.MustCompile(`(?i)(?:stopped at|paused at|left off at|ended with)\s+([A-Za-z][A-Za-z\s]+)`),
	regexp.MustCompile(`(?i)(?:covered|finished|completed)\s+([A-Za-z][A-Za-z\s]+)`),
	regexp.MustCompile(`نقطة\s+التوقف[:؟]?\s*(.+)`),
	regexp.MustCompile(`وصلنا\s+إلى\s*(.+)`),
	regexp.MustCompile(`انتهينا\s+من\s*(.+)`),
	regexp.MustCompile(`تعلمنا\s+عن\s*(.+)`),
}

// Praise phrases taken as a drill-sentence completion signal.
var completionPhrases = []string{
	"ممتاز", "أحسنت", "جيد جداً", "excellent", "great", "perfect",
}

// Judgement phrases for answer tracking. Wrong phrases are checked first
// so "incorrect" is not read as "correct".
var wrongPhrases = []string{
	"incorrect", "wrong", "not quite", "try again", "mistake",
	"خطأ", "غير صحيح", "حاول مرة أخرى",
}

var correctPhrases = []string{
	"excellent", "great", "perfect", "correct", "right", "well done",
	"ممتاز", "رائع", "صحيح", "أحسنت", "جيد جداً",
}

// Casual subjects looked for in conversation mode.
var conversationTopics = []string{
	"technology", "phones", "computers", "travel", "food", "sports",
	"movies", "music", "work", "study", "hobbies", "family", "weather",
}

var englishWordPattern = regexp.MustCompile(`\b[A-Za-z]{3,}\b`)

// Personal-info patterns over the learner's own speech, English and Arabic.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:my name is|i'm|i am|call me|اسمي|أنا)\s+([\p{Arabic}\w]+)`),
	regexp.MustCompile(`^\s*([\p{Arabic}\w]+)\s*$`),
}

// Single-word replies that are acknowledgements, not names.
var nonNameWords = map[string]bool{
	"yes": true, "no": true, "okay": true, "sure": true, "hello": true,
	"hi": true, "thanks": true, "thank": true,
	"نعم": true, "لا": true, "شكرا": true, "مرحبا": true,
}

var agePattern = regexp.MustCompile(`(?i)(?:عمري|age|i am|i'm|أنا)\s*(\d{1,2})(?:\s*(?:year|سنة|عام))?`)

var cityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:from|live in|من|أسكن في)\s+([\p{Arabic}\w][\p{Arabic}\w\s]*?)(?:\.|,|$)`),
	regexp.MustCompile(`(?i)(?:city|مدينة|مدينتي)\s+(?:is|:)?\s*([\p{Arabic}\w][\p{Arabic}\w\s]*?)(?:\.|,|$)`),
}

var occupationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:i'm a|i am a|i work as|أنا|عملي)\s+(student|teacher|engineer|doctor|developer|designer|طالب|مهندس|طبيب|معلم|مبرمج)`),
	regexp.MustCompile(`(?i)(?:job|occupation|مهنة)\s*(?:is|:)?\s*([\p{Arabic}\w]+)`),
}

var hobbyKeywords = []string{
	"football", "soccer", "reading", "cooking", "gaming", "music",
	"swimming", "running",
	"قراءة", "كرة", "طبخ", "ألعاب", "موسيقى", "سباحة", "جري",
}
