package memory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/voicetutor/internal/topics"
	"github.com/example/voicetutor/pkg/models"
)

// Memory blocks injected into the tutoring LLM at session start. Each
// builder is a pure rendering over one progress document and must produce
// sensible text for zero-valued documents too (first-time users).

// BuildCurriculum renders the curriculum-mode memory block.
func BuildCurriculum(p models.UserProgress, userName string) string {
	var b strings.Builder

	words := sortedWords(p.Vocabulary, 10)

	fmt.Fprintf(&b, "=== ذاكرة المستخدم: %s ===\n", userName)
	b.WriteString("📊 إحصائيات التعلم:\n")
	fmt.Fprintf(&b, "- عدد الكلمات المتعلمة: %d\n", p.WordsLearned)
	fmt.Fprintf(&b, "- نسبة التقدم: %d%%\n", p.ProgressPercentage)
	fmt.Fprintf(&b, "\n📚 الموضوع الحالي: %s\n", orDefault(p.CurrentTopic, "لم يبدأ بعد"))
	fmt.Fprintf(&b, "📍 آخر نقطة توقف: %s\n", orDefault(p.LastPosition, "البداية"))
	fmt.Fprintf(&b, "✅ المواضيع المكتملة: %s\n", orDefault(strings.Join(p.TopicsCompleted, ", "), "لا توجد"))
	fmt.Fprintf(&b, "\n🔤 بعض الكلمات المتعلمة: %s\n", orDefault(strings.Join(words, ", "), "لا توجد كلمات بعد"))

	b.WriteString("\nCRITICAL INSTRUCTIONS FOR RETURNING USER:\n")
	if p.CurrentTopic != "" && p.ProgressPercentage < 100 {
		fmt.Fprintf(&b, "1. هناك موضوع غير مكتمل! يجب أن تسأل المستخدم:\n")
		fmt.Fprintf(&b, "   \"أهلاً بك مرة أخرى! أرى أنك كنت تدرس موضوع %s وتوقفت عند %s\"\n",
			p.CurrentTopic, orDefault(p.LastPosition, "البداية"))
		b.WriteString("   \"هل تريد أن نكمل من حيث توقفنا، أم تفضل البدء بموضوع جديد؟\"\n")
	} else if next, ok := topics.Next(p.TopicsCompleted); ok {
		fmt.Fprintf(&b, "1. لا يوجد موضوع معلق، اقترح الموضوع التالي: %s (%s)\n",
			next.Name, next.ArabicName)
	} else {
		b.WriteString("1. أكمل المستخدم كل المواضيع! راجع المواضيع السابقة أو تحدث بحرية\n")
	}
	b.WriteString("2. انتظر إجابة المستخدم قبل المتابعة، لا تفترض أي شيء\n")
	b.WriteString("3. إذا اختار المتابعة، استكمل من آخر نقطة توقف وراجع الكلمات السابقة بسرعة\n")
	b.WriteString("4. إذا اختار موضوعاً جديداً، اقترح الموضوع التالي وابدأ بتقييم سريع\n")
	b.WriteString("5. احفظ التقدم باستمرار أثناء الجلسة\n")

	if recent := recentSessions(p.ConversationHistory, 2); len(recent) > 0 {
		b.WriteString("\n📝 آخر المحادثات:\n")
		for _, rec := range recent {
			fmt.Fprintf(&b, "- %s: %d كلمة، توقف عند: %s\n",
				orDefault(rec.Topic, "غير محدد"), len(rec.WordsDiscussed), rec.LastPosition)
		}
	}

	b.WriteString("\n⚠️ مهم: استخدم هذه المعلومات لتقديم تجربة تعليمية متواصلة ومخصصة!\n")
	return b.String()
}

// BuildSentences renders the sentence-drill memory block.
func BuildSentences(sp models.SentencesProgress, userName string) string {
	var b strings.Builder

	recentLearned := tail(sp.LearnedSentencesHistory, 10)
	upcoming := window(sp.GeneratedSentences, sp.CurrentSentenceIndex, 5)

	fmt.Fprintf(&b, "=== ذاكرة تعليم الجمل للمستخدم: %s ===\n", userName)
	b.WriteString("📊 إحصائيات الجلسة:\n")
	fmt.Fprintf(&b, "- المستوى الحالي: %d\n", sp.CurrentLevel)
	fmt.Fprintf(&b, "- الجمل المكتملة: %d\n", sp.CompletedSentences)
	fmt.Fprintf(&b, "- إجمالي الجمل في الجلسة: %d\n", len(sp.GeneratedSentences))
	fmt.Fprintf(&b, "- الجملة التالية: %d\n", sp.CurrentSentenceIndex+1)

	b.WriteString("\n📝 آخر الجمل التي تعلمها المستخدم:\n")
	writeBullets(&b, recentLearned, "- لا توجد جمل متعلمة بعد")

	b.WriteString("\n🎯 الجمل التالية في الجلسة:\n")
	writeBullets(&b, upcoming, "- لا توجد جمل جديدة")

	b.WriteString("\n🔥 تعليمات مهمة للمساعد في وضع الجمل:\n")
	b.WriteString("1. أنت في وضع تعليم الجمل البسيطة، ركز على الجمل فقط\n")
	fmt.Fprintf(&b, "2. المستخدم تعلم بالفعل %d جملة في المجموع\n", len(sp.LearnedSentencesHistory))
	b.WriteString("3. يجب عليك تذكر الجمل التي تعلمها وتجنب تكرارها\n")
	fmt.Fprintf(&b, "4. ابدأ من المستوى %d واستمر في التدرج من البسيط للمعقد\n", sp.CurrentLevel)
	b.WriteString("\n⚠️ CRITICAL: تذكر الجمل المحددة أعلاه، لا تكررها!\n")
	return b.String()
}

// BuildPodcast renders the conversation-mode memory block.
func BuildPodcast(p models.PodcastProgress, userName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== Podcast Conversation Memory for: %s ===\n", userName)
	b.WriteString("📊 Statistics:\n")
	fmt.Fprintf(&b, "- Total conversations: %d\n", p.TotalConversations)
	fmt.Fprintf(&b, "- Fluency level: %s\n", orDefault(p.FluencyLevel, models.FluencyBeginner))
	fmt.Fprintf(&b, "- Topics discussed: %s\n",
		orDefault(strings.Join(tail(p.TopicsDiscussed, 5), ", "), "None yet"))

	b.WriteString("\n📍 Last Session:\n")
	fmt.Fprintf(&b, "- Topic: %s\n", orDefault(p.LastTopic, "First conversation"))
	fmt.Fprintf(&b, "- Position: %s\n", orDefault(p.LastPosition, "Starting fresh"))
	fmt.Fprintf(&b, "- Context: %s\n", orDefault(p.LastContext, "No previous context"))
	fmt.Fprintf(&b, "- Summary: %s\n", orDefault(p.ConversationSummary, "This is our first conversation"))

	b.WriteString("\n🎯 Common Mistakes to Address:\n")
	writeBullets(&b, tail(p.CommonMistakes, 5), "- No mistakes recorded yet")

	b.WriteString("\n✨ Noticed Improvements:\n")
	writeBullets(&b, tail(p.Improvements, 5), "- First session")

	b.WriteString("\n🔥 CRITICAL INSTRUCTIONS FOR RETURNING USER:\n")
	if p.LastTopic != "" {
		fmt.Fprintf(&b, "1. Acknowledge the previous topic naturally: \"Hey! Last time we were talking about %s. %s\"\n",
			p.LastTopic, p.LastPosition)
		b.WriteString("   \"Would you like to continue that conversation or talk about something new?\"\n")
	} else {
		b.WriteString("1. This is a first conversation, start with a friendly introduction\n")
	}
	b.WriteString("2. Reference their progress naturally: mention improvements and gently correct recurring mistakes\n")
	fmt.Fprintf(&b, "3. Adapt to their fluency level (%s)\n", orDefault(p.FluencyLevel, models.FluencyBeginner))
	b.WriteString("4. Make the conversation feel continuous and personal!\n")
	return b.String()
}

// BuildPersonal renders the learner's personal context block, shared by all
// modes.
func BuildPersonal(ctx models.PersonalContext, userName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== 🌟 PERSONAL CONTEXT FOR: %s ===\n", userName)
	b.WriteString("\nUSE THIS INFORMATION TO CREATE PERSONALIZED, REAL-LIFE EXAMPLES!\n")

	b.WriteString("\n👤 Basic Info:\n")
	fmt.Fprintf(&b, "- Name: %s\n", orDefault(ctx.FirstName, "Unknown"))
	fmt.Fprintf(&b, "- Age: %s\n", orDefaultInt(ctx.Age, "Unknown"))
	fmt.Fprintf(&b, "- Occupation: %s\n", orDefault(ctx.Occupation, "Unknown"))
	fmt.Fprintf(&b, "- City: %s\n", orDefault(ctx.City, "Unknown"))

	b.WriteString("\n👨‍👩‍👧 Family & Friends:\n")
	fmt.Fprintf(&b, "- Family members: %s\n", orDefault(joinMap(ctx.FamilyMembers), "Not yet collected"))
	fmt.Fprintf(&b, "- Friends: %s\n", orDefault(strings.Join(ctx.Friends, ", "), "Not yet collected"))
	fmt.Fprintf(&b, "- Pets: %s\n", orDefault(joinPets(ctx.Pets), "None"))

	b.WriteString("\n❤️ Interests & Preferences:\n")
	fmt.Fprintf(&b, "- Hobbies: %s\n", orDefault(strings.Join(ctx.Hobbies, ", "), "Not yet collected"))
	fmt.Fprintf(&b, "- Favorite foods: %s\n", orDefault(strings.Join(ctx.FavoriteFoods, ", "), "Not yet collected"))

	b.WriteString("\n🎯 Goals & Dreams:\n")
	fmt.Fprintf(&b, "- Learning goals: %s\n", orDefault(strings.Join(ctx.LearningGoals, ", "), "Not yet discussed"))
	fmt.Fprintf(&b, "- Dream job: %s\n", orDefault(ctx.DreamJob, "Not shared yet"))

	fmt.Fprintf(&b, "\n📊 Context Completeness: %d%%\n", ctx.ContextCompleteness)

	b.WriteString("\n⚠️ CRITICAL INSTRUCTIONS:\n")
	b.WriteString("1. IF INFO IS MISSING: ask naturally during the lesson\n")
	b.WriteString("2. USE THEIR ACTUAL INFO IN EXAMPLES: family names, hobbies, favorite things\n")
	b.WriteString("3. When they mention new info, use it immediately\n")
	b.WriteString("\nRemember: this is THEIR English learning journey, not a generic textbook!\n")
	return b.String()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func orDefaultInt(n int, def string) string {
	if n == 0 {
		return def
	}
	return fmt.Sprintf("%d", n)
}

func writeBullets(b *strings.Builder, items []string, empty string) {
	if len(items) == 0 {
		b.WriteString(empty + "\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

func tail(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}

func window(items []string, from, n int) []string {
	if from < 0 || from >= len(items) {
		return nil
	}
	end := from + n
	if end > len(items) {
		end = len(items)
	}
	return items[from:end]
}

func sortedWords(vocab models.VocabularyMap, n int) []string {
	words := make([]string, 0, len(vocab))
	for w := range vocab {
		words = append(words, w)
	}
	sort.Strings(words)
	if len(words) > n {
		words = words[:n]
	}
	return words
}

// recentSessions returns the newest n curriculum records, oldest first,
// skipping the compaction summary.
func recentSessions(history models.HistoryMap, n int) []models.SessionRecord {
	records := make([]models.SessionRecord, 0, len(history))
	for _, rec := range history {
		if rec.Compressed != nil {
			continue
		}
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp < records[j].Timestamp
	})
	if len(records) > n {
		records = records[len(records)-n:]
	}
	return records
}

func joinMap(m models.StringMap) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, m[k]))
	}
	return strings.Join(parts, ", ")
}

func joinPets(pets models.PetList) string {
	parts := make([]string, 0, len(pets))
	for _, p := range pets {
		parts = append(parts, fmt.Sprintf("%s (%s)", p.Name, p.Type))
	}
	return strings.Join(parts, ", ")
}
