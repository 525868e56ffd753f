package exam

// Topic is an immutable cue-card topic selected before a session starts.
type Topic struct {
	ID         string
	Category   string
	Name       string
	Difficulty Difficulty
	Keywords   []string
}

// DefaultTopicName is used in prompts when a session runs without a topic;
// the evaluator is then expected to pick its own cue card.
const DefaultTopicName = "a memorable event in your life"

var topics = []Topic{
	{ID: "t1", Category: "Work & Career", Name: "Your Dream Job", Difficulty: DifficultyBeginner, Keywords: []string{"job", "career", "work", "profession"}},
	{ID: "t2", Category: "Work & Career", Name: "A Successful Business Person", Difficulty: DifficultyIntermediate, Keywords: []string{"business", "entrepreneur", "success"}},
	{ID: "t3", Category: "Work & Career", Name: "Work-Life Balance", Difficulty: DifficultyAdvanced, Keywords: []string{"balance", "productivity", "stress"}},

	{ID: "t4", Category: "Education", Name: "Your Favorite Subject", Difficulty: DifficultyBeginner, Keywords: []string{"school", "subject", "learning"}},
	{ID: "t5", Category: "Education", Name: "Online vs Traditional Learning", Difficulty: DifficultyIntermediate, Keywords: []string{"education", "technology", "learning"}},
	{ID: "t6", Category: "Education", Name: "The Future of Education", Difficulty: DifficultyAdvanced, Keywords: []string{"innovation", "AI", "education"}},

	{ID: "t7", Category: "Technology", Name: "Your Favorite App", Difficulty: DifficultyBeginner, Keywords: []string{"app", "phone", "technology"}},
	{ID: "t8", Category: "Technology", Name: "Social Media Impact", Difficulty: DifficultyIntermediate, Keywords: []string{"social media", "society", "communication"}},
	{ID: "t9", Category: "Technology", Name: "Artificial Intelligence Ethics", Difficulty: DifficultyAdvanced, Keywords: []string{"AI", "ethics", "future"}},

	{ID: "t10", Category: "Travel & Culture", Name: "A Place You Want to Visit", Difficulty: DifficultyBeginner, Keywords: []string{"travel", "destination", "tourism"}},
	{ID: "t11", Category: "Travel & Culture", Name: "Cultural Differences", Difficulty: DifficultyIntermediate, Keywords: []string{"culture", "tradition", "diversity"}},
	{ID: "t12", Category: "Travel & Culture", Name: "Globalization Effects", Difficulty: DifficultyAdvanced, Keywords: []string{"globalization", "culture", "economy"}},

	{ID: "t13", Category: "Environment", Name: "Your Favorite Season", Difficulty: DifficultyBeginner, Keywords: []string{"weather", "season", "nature"}},
	{ID: "t14", Category: "Environment", Name: "Environmental Protection", Difficulty: DifficultyIntermediate, Keywords: []string{"environment", "pollution", "conservation"}},
	{ID: "t15", Category: "Environment", Name: "Climate Change Solutions", Difficulty: DifficultyAdvanced, Keywords: []string{"climate", "sustainability", "policy"}},

	{ID: "t16", Category: "Health & Lifestyle", Name: "Your Daily Routine", Difficulty: DifficultyBeginner, Keywords: []string{"routine", "habits", "daily"}},
	{ID: "t17", Category: "Health & Lifestyle", Name: "Healthy Living", Difficulty: DifficultyIntermediate, Keywords: []string{"health", "fitness", "wellness"}},
	{ID: "t18", Category: "Health & Lifestyle", Name: "Mental Health Awareness", Difficulty: DifficultyAdvanced, Keywords: []string{"mental health", "wellbeing", "society"}},

	{ID: "t19", Category: "Entertainment", Name: "Your Favorite Movie", Difficulty: DifficultyBeginner, Keywords: []string{"movie", "film", "entertainment"}},
	{ID: "t20", Category: "Entertainment", Name: "Music and Emotions", Difficulty: DifficultyIntermediate, Keywords: []string{"music", "emotions", "culture"}},
	{ID: "t21", Category: "Entertainment", Name: "The Role of Art in Society", Difficulty: DifficultyAdvanced, Keywords: []string{"art", "society", "culture"}},
}

// Topics returns the full cue-card catalog.
func Topics() []Topic {
	out := make([]Topic, len(topics))
	copy(out, topics)
	return out
}

// TopicByID looks up a topic in the catalog. Returns nil if not found.
func TopicByID(id string) *Topic {
	for i := range topics {
		if topics[i].ID == id {
			t := topics[i]
			return &t
		}
	}
	return nil
}

// TopicsByDifficulty filters the catalog to a single difficulty level.
func TopicsByDifficulty(d Difficulty) []Topic {
	var out []Topic
	for _, t := range topics {
		if t.Difficulty == d {
			out = append(out, t)
		}
	}
	return out
}
