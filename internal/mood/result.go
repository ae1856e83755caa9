package mood

// Result is the outcome of one mood analysis.
type Result struct {
	Scores         Scores   `json:"scores"`
	PrimaryMood    Mood     `json:"primaryMood"`
	MoodLabel      string   `json:"moodLabel"`
	Emoji          string   `json:"emoji"`
	Description    string   `json:"description"`
	DominantColors []string `json:"dominantColors"`
	Palette        []Swatch `json:"palette,omitempty"`
	AccentColor    string   `json:"accentColor,omitempty"`
}

// Present builds a Result from final scores and the dominant colours they came from.
func Present(scores Scores, dominant []RGB) *Result {
	primary := scores.Primary()
	category := GetMoodCategory(primary)

	hexes := make([]string, len(dominant))
	for i, c := range dominant {
		hexes[i] = c.Hex()
	}

	return &Result{
		Scores:         scores,
		PrimaryMood:    primary,
		MoodLabel:      category.Label,
		Emoji:          category.Emoji,
		Description:    category.Description,
		DominantColors: hexes,
	}
}
