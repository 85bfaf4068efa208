package topics

import "strings"

// Topic is one entry in the fixed 31-topic English curriculum.
type Topic struct {
	ID         int
	Name       string
	ArabicName string
	Difficulty string
}

// Difficulty tiers.
const (
	Beginner     = "beginner"
	Intermediate = "intermediate"
	Advanced     = "advanced"
)

// Curriculum is the ordered 31-topic catalog, Nouns through Phrasal verbs.
// Learners work through it in order; completion is tracked per user.
var Curriculum = []Topic{
	{1, "Nouns", "الأسماء", Beginner},
	{2, "Definite and Indefinite Articles", "أدوات التعريف والتنكير", Beginner},
	{3, "Adjectives", "الصفات", Beginner},
	{4, "Personal Pronouns", "الضمائر الشخصية", Beginner},
	{5, "Verbs", "الأفعال", Intermediate},
	{6, "More about Verbs", "المزيد عن الأفعال", Intermediate},
	{7, "Auxiliary Verbs", "الأفعال المساعدة", Intermediate},
	{8, "The past progressive tense", "زمن الماضي المستمر", Intermediate},
	{9, "Passive voice", "المبني للمجهول", Intermediate},
	{10, "Adverbs", "الظروف", Intermediate},
	{11, "Contractions", "الاختصارات", Intermediate},
	{12, "Plurals", "الجموع", Intermediate},
	{13, "Punctuation", "علامات الترقيم", Intermediate},
	{14, "Infinitives and gerunds", "المصادر وصيغ الفعل الاسمية", Intermediate},
	{15, "Relative pronouns", "ضمائر الوصل", Intermediate},
	{16, "Reflexive pronouns", "الضمائر الانعكاسية", Intermediate},
	{17, "Possession", "الملكية", Intermediate},
	{18, "Prepositions", "حروف الجر", Intermediate},
	{19, "More about prepositions", "المزيد عن حروف الجر", Intermediate},
	{20, "Capitalization", "الأحرف الكبيرة", Intermediate},
	{21, "Subjunctive mood", "صيغة التمني والافتراض", Advanced},
	{22, "Comparatives and superlatives", "المقارنة والتفضيل", Advanced},
	{23, "Conjunctions", "أدوات الربط", Advanced},
	{24, "Interrogatives", "أدوات الاستفهام", Advanced},
	{25, "Negation", "النفي", Advanced},
	{26, "Numbers", "الأعداد", Advanced},
	{27, "Conversation: Introductions, opinions, descriptions", "محادثة: التعارف والآراء والوصف", Advanced},
	{28, "Conversation: Openers, appointments, needs", "محادثة: بدء الحديث والمواعيد والاحتياجات", Advanced},
	{29, "Conversation: Future events, narration, electronic communication", "محادثة: أحداث المستقبل والسرد والتواصل الإلكتروني", Advanced},
	{30, "Some Important Contrasts", "بعض الفروق المهمة", Advanced},
	{31, "Phrasal verbs", "الأفعال المركبة", Advanced},
}

// ByName looks a topic up by its English name, case-insensitively, so
// topics recovered from free text resolve to their canonical entry.
func ByName(name string) (Topic, bool) {
	for _, t := range Curriculum {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Topic{}, false
}

// Next suggests the first curriculum topic not yet completed, in catalog
// order. New learners start with Nouns. Returns false when everything is
// done.
func Next(completed []string) (Topic, bool) {
	done := make(map[string]bool, len(completed))
	for _, name := range completed {
		done[name] = true
	}
	for _, t := range Curriculum {
		if !done[t.Name] {
			return t, true
		}
	}
	return Topic{}, false
}
