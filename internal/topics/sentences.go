package topics

// SentenceCategory is one thematic group in the 3000-sentence drill bank:
// 30 categories, 5 difficulty levels, 20 sentences per level per category.
type SentenceCategory struct {
	ID         int
	Name       string
	ArabicName string
}

// Drill bank dimensions.
const (
	SentenceLevels        = 5
	SentencesPerLevel     = 20
	SentenceCategoryCount = 30
)

// SentenceCategories lists the 30 thematic categories, basic through
// advanced.
var SentenceCategories = []SentenceCategory{
	{1, "Greetings & Introductions", "التحيات والتعارف"},
	{2, "Family & Relatives", "الأسرة والأقارب"},
	{3, "Food & Drinks", "الطعام والشراب"},
	{4, "Home & Furniture", "المنزل والأثاث"},
	{5, "Numbers & Time", "الأرقام والوقت"},
	{6, "Colors & Shapes", "الألوان والأشكال"},
	{7, "Body & Health", "الجسم والصحة"},
	{8, "Clothes & Appearance", "الملابس والمظهر"},
	{9, "Feelings & Emotions", "المشاعر والأحاسيس"},
	{10, "Weather & Climate", "الطقس والمناخ"},
	{11, "Transportation & Travel", "النقل والسفر"},
	{12, "Shopping & Money", "التسوق والمال"},
	{13, "Work & Professions", "العمل والمهن"},
	{14, "Education & School", "التعليم والمدرسة"},
	{15, "Sports & Hobbies", "الرياضة والهوايات"},
	{16, "Technology & Internet", "التكنولوجيا والإنترنت"},
	{17, "Nature & Animals", "الطبيعة والحيوانات"},
	{18, "City & Places", "المدينة والأماكن"},
	{19, "Daily Activities", "الأنشطة اليومية"},
	{20, "Events & Celebrations", "المناسبات والأعياد"},
	{21, "Opinions & Discussions", "الآراء والمناقشات"},
	{22, "Future & Plans", "المستقبل والخطط"},
	{23, "Past & Memories", "الماضي والذكريات"},
	{24, "Problems & Solutions", "المشاكل والحلول"},
	{25, "Advice & Instructions", "النصائح والإرشادات"},
	{26, "Culture & Traditions", "الثقافة والتقاليد"},
	{27, "News & Events", "الأخبار والأحداث"},
	{28, "Business & Commerce", "الأعمال والتجارة"},
	{29, "Social Relations", "العلاقات الاجتماعية"},
	{30, "Dreams & Aspirations", "الأحلام والطموحات"},
}

// ValidSentenceCategory reports whether a bank row names a known category.
func ValidSentenceCategory(name string) bool {
	for _, c := range SentenceCategories {
		if c.Name == name {
			return true
		}
	}
	return false
}
