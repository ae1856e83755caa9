package mood

// Mood is one of the eight fashion-style buckets scored per analysis.
type Mood string

const (
	Chic       Mood = "chic"
	Lovely     Mood = "lovely"
	Hip        Mood = "hip"
	Classy     Mood = "classy"
	Casual     Mood = "casual"
	Vintage    Mood = "vintage"
	Minimal    Mood = "minimal"
	Avantgarde Mood = "avantgarde"
)

// Moods lists every bucket in tie-breaking order.
var Moods = []Mood{Chic, Lovely, Hip, Classy, Casual, Vintage, Minimal, Avantgarde}

// MoodCategory is the pre-written copy shown for a primary mood.
type MoodCategory struct {
	Label       string // Display name, e.g. "시크 모던"
	Emoji       string
	Description string
}

var categories = map[Mood]MoodCategory{
	Chic: {
		Label:       "시크 모던",
		Emoji:       "🖤",
		Description: "절제된 톤으로 도시적인 분위기를 완성했어요. 말수는 적어도 존재감은 확실한 스타일!",
	},
	Lovely: {
		Label:       "러블리 소프트",
		Emoji:       "🌸",
		Description: "밝고 부드러운 컬러가 다정한 인상을 줘요. 보는 사람까지 기분 좋아지는 코디예요.",
	},
	Hip: {
		Label:       "힙 스트릿",
		Emoji:       "🔥",
		Description: "쨍한 컬러로 시선을 사로잡는 스타일. 오늘의 주인공은 바로 당신이에요.",
	},
	Classy: {
		Label:       "클래식 엘레강스",
		Emoji:       "🎩",
		Description: "깊은 컬러가 품격을 더해줘요. 격식 있는 자리에서도 빛나는 코디예요.",
	},
	Casual: {
		Label:       "데일리 캐주얼",
		Emoji:       "👟",
		Description: "편안하지만 센스 있는 조합이에요. 어디든 자연스럽게 어울리는 만능 코디!",
	},
	Vintage: {
		Label:       "빈티지 무드",
		Emoji:       "📻",
		Description: "따뜻하고 차분한 톤이 레트로 감성을 살려줘요. 오래 봐도 질리지 않는 스타일이에요.",
	},
	Minimal: {
		Label:       "미니멀 클린",
		Emoji:       "🤍",
		Description: "군더더기 없는 무채색 조합. 심플함이 최고의 세련됨이라는 걸 보여줘요.",
	},
	Avantgarde: {
		Label:       "아방가르드",
		Emoji:       "🎨",
		Description: "과감한 대비와 독특한 컬러로 나만의 세계관을 표현했어요. 패션은 곧 예술!",
	},
}

// GetMoodCategory returns the display copy for a mood.
func GetMoodCategory(m Mood) MoodCategory {
	if c, ok := categories[m]; ok {
		return c
	}
	return MoodCategory{Label: string(m)}
}

// IsValid reports whether m names a known bucket.
func (m Mood) IsValid() bool {
	_, ok := categories[m]
	return ok
}
