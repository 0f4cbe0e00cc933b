package realms

// Lesson step kinds.
const (
	LessonEducation  = "education"
	LessonExercise   = "exercise"
	LessonReflection = "reflection"
)

// Lesson is one scripted step of a realm experience.
type Lesson struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

var lessons = map[string][]Lesson{
	"fear": {
		{ID: "fear-1", Title: "Understanding Fear", Content: "Fear is a natural emotion designed to protect us. However, when fear becomes overwhelming, it can limit our growth and potential. Let's explore the nature of fear and learn to transform it into courage.", Type: LessonEducation},
		{ID: "fear-2", Title: "Breathing Exercise", Content: "Take a deep breath in for 4 counts, hold for 4 counts, and exhale for 6 counts. This technique activates your parasympathetic nervous system, naturally reducing fear and anxiety.", Type: LessonExercise},
		{ID: "fear-3", Title: "Facing Your Fears", Content: "What is one fear that has been holding you back? Write it down and imagine yourself moving through it with confidence and strength.", Type: LessonReflection},
	},
	"doubt": {
		{ID: "doubt-1", Title: "The Nature of Self-Doubt", Content: "Self-doubt often stems from past experiences and limiting beliefs. Recognizing these patterns is the first step toward building unshakeable confidence.", Type: LessonEducation},
		{ID: "doubt-2", Title: "Affirmation Practice", Content: "Repeat after each statement: \"I am capable\", \"I trust my decisions\", \"I believe in my abilities\". Feel the truth of these words resonate within you.", Type: LessonExercise},
		{ID: "doubt-3", Title: "Evidence of Your Strength", Content: "List three achievements you're proud of, no matter how small. These are proof of your capabilities and inner strength.", Type: LessonReflection},
	},
	"anxiety": {
		{ID: "anxiety-1", Title: "Understanding Anxiety", Content: "Anxiety is your mind's way of preparing for potential threats. While this can be helpful, excessive anxiety can overwhelm us. Learning to calm your nervous system is key.", Type: LessonEducation},
		{ID: "anxiety-2", Title: "Grounding Technique", Content: "Notice 5 things you can see, 4 things you can touch, 3 things you can hear, 2 things you can smell, and 1 thing you can taste. This brings you back to the present moment.", Type: LessonExercise},
		{ID: "anxiety-3", Title: "Creating Your Safe Space", Content: "Imagine a place where you feel completely safe and calm. Describe this space in detail and remember you can return here in your mind whenever you need peace.", Type: LessonReflection},
	},
	"self-worth": {
		{ID: "worth-1", Title: "Your Inherent Value", Content: "Your worth is not determined by achievements, others' opinions, or external validation. You are valuable simply because you exist.", Type: LessonEducation},
		{ID: "worth-2", Title: "Self-Compassion Practice", Content: "Place your hand on your heart and speak to yourself as you would to a beloved friend. Offer yourself the same kindness and understanding.", Type: LessonExercise},
		{ID: "worth-3", Title: "Celebrating Yourself", Content: "Write about a quality you possess that makes you unique and valuable. How has this quality helped you or others?", Type: LessonReflection},
	},
	"forgiveness": {
		{ID: "forgiveness-1", Title: "The Power of Forgiveness", Content: "Forgiveness is not about excusing harmful behavior, but about freeing yourself from the burden of resentment. It's a gift you give yourself.", Type: LessonEducation},
		{ID: "forgiveness-2", Title: "Loving-Kindness Meditation", Content: "Send thoughts of loving-kindness first to yourself, then to loved ones, neutral people, difficult people, and finally to all beings everywhere.", Type: LessonExercise},
		{ID: "forgiveness-3", Title: "Letter of Release", Content: "Write a letter to someone you need to forgive (including yourself). You don't need to send it - this is for your healing.", Type: LessonReflection},
	},
	"wisdom": {
		{ID: "wisdom-1", Title: "Integration and Wisdom", Content: "True wisdom comes from integrating all aspects of your experience - light and shadow, joy and pain. You are becoming whole.", Type: LessonEducation},
		{ID: "wisdom-2", Title: "Mindfulness Practice", Content: "Sit quietly and observe your thoughts without judgment. Notice how they arise and pass away like clouds in the sky of your awareness.", Type: LessonExercise},
		{ID: "wisdom-3", Title: "Your Wisdom Journey", Content: "Reflect on how you've grown through your journey in Inner Flame. What wisdom would you share with someone just beginning their path?", Type: LessonReflection},
	},
}

// Lessons returns the scripted steps for a realm, in presentation order.
// The second return is false for ids outside the catalog.
func Lessons(realmID string) ([]Lesson, bool) {
	l, ok := lessons[realmID]
	return l, ok
}
